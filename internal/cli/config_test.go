package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTablesLikeCommand registers the same flag set cmd/gxpdf/commands/tables.go
// binds onto the real "tables" command, so LoadConfig can be exercised
// without depending on the cmd package.
func newTablesLikeCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "tables"}
	cmd.Flags().String("detection_method", "rule-based", "")
	cmd.Flags().String("layout_method", "rule-based", "")
	cmd.Flags().Float64("max_linespace", -0.3, "")
	cmd.Flags().Float64("max_charspace", 5, "")
	cmd.Flags().String("img_path", "", "")
	cmd.Flags().Bool("overwrite", false, "")
	cmd.Flags().String("export", "", "")
	cmd.Flags().String("export_format", "csv", "")
	cmd.Flags().Int("workers", 1, "")
	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	cmd := newTablesLikeCommand()

	cfg, err := LoadConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "rule-based", cfg.DetectionMethod)
	assert.Equal(t, "rule-based", cfg.LayoutMethod)
	assert.Equal(t, -0.3, cfg.Params.MaxLineSpace)
	assert.Equal(t, 5.0, cfg.Params.MaxCharSpace)
	assert.Equal(t, "", cfg.ImgPath)
	assert.False(t, cfg.Overwrite)
	assert.Equal(t, "", cfg.ExportDir)
	assert.Equal(t, "csv", cfg.ExportFormat)
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoadConfigHonorsExplicitFlags(t *testing.T) {
	cmd := newTablesLikeCommand()
	require.NoError(t, cmd.Flags().Set("max_linespace", "-1.5"))
	require.NoError(t, cmd.Flags().Set("max_charspace", "8"))
	require.NoError(t, cmd.Flags().Set("export_format", "JSON"))
	require.NoError(t, cmd.Flags().Set("workers", "4"))

	cfg, err := LoadConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, -1.5, cfg.Params.MaxLineSpace)
	assert.Equal(t, 8.0, cfg.Params.MaxCharSpace)
	assert.Equal(t, "json", cfg.ExportFormat)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoadConfigForcesOverwriteWhenWorkersAboveOne(t *testing.T) {
	cmd := newTablesLikeCommand()
	require.NoError(t, cmd.Flags().Set("workers", "2"))

	cfg, err := LoadConfig(cmd)
	require.NoError(t, err)

	assert.True(t, cfg.Overwrite)
}

func TestLoadConfigLowercasesMethodNames(t *testing.T) {
	cmd := newTablesLikeCommand()
	require.NoError(t, cmd.Flags().Set("detection_method", "Model-Based"))
	require.NoError(t, cmd.Flags().Set("layout_method", "RULE-BASED"))

	cfg, err := LoadConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "model-based", cfg.DetectionMethod)
	assert.Equal(t, "rule-based", cfg.LayoutMethod)
}
