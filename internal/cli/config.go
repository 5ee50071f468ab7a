// Package cli holds the ambient stack the gxpdf command tree is built
// on: config-file loading, structured logging, and the --workers file
// dispatcher. None of it is imported by internal/tablecore, which stays
// pure per §5 of the core specification.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/gxpdf/internal/tablecore"
)

// Config is the resolved set of options for one `gxpdf tables` run:
// LayoutParams tuned from a config file and flags, plus the CLI-only
// dispatch/export/overlay settings named in §6.
type Config struct {
	Params tablecore.LayoutParams

	DetectionMethod string // "rule-based" or "model-based"
	LayoutMethod    string // "rule-based" or "model-based"

	ImgPath   string
	Overwrite bool

	ExportDir    string
	ExportFormat string // "csv", "json", "excel"

	Workers int
}

// LoadConfig resolves a Config from, in increasing precedence: the
// tablecore defaults, an optional config file (gxpdf.yaml in the
// working directory or $HOME), and the flags already bound on cmd.
// Viper's flag binding makes an explicitly-set flag win over a
// file value automatically; unset flags fall through to the file.
func LoadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetConfigName("gxpdf")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	v.SetEnvPrefix("GXPDF")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, fmt.Errorf("cli: bind flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("cli: read config: %w", err)
		}
	}

	params := tablecore.DefaultLayoutParams()
	if v.IsSet("max_linespace") {
		params.MaxLineSpace = v.GetFloat64("max_linespace")
	}
	if v.IsSet("max_charspace") {
		params.MaxCharSpace = v.GetFloat64("max_charspace")
	}

	cfg := Config{
		Params:          params,
		DetectionMethod: strings.ToLower(v.GetString("detection_method")),
		LayoutMethod:    strings.ToLower(v.GetString("layout_method")),
		ImgPath:         v.GetString("img_path"),
		Overwrite:       v.GetBool("overwrite"),
		ExportDir:       v.GetString("export"),
		ExportFormat:    strings.ToLower(v.GetString("export_format")),
		Workers:         v.GetInt("workers"),
	}
	if cfg.Workers > 1 {
		cfg.Overwrite = true
	}
	return cfg, nil
}
