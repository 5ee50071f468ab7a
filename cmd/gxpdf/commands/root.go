// Package commands implements the gxpdf CLI commands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is the application version (set at build time).
	Version = "dev"
	// GitCommit is the git commit hash (set at build time).
	GitCommit = "unknown"
	// BuildDate is the build date (set at build time).
	BuildDate = "unknown"

	// Global flags.
	outputFormat string
	verbose      bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "gxpdf",
	Short: "GxPDF - born-digital PDF table reconstruction tool",
	Long: `GxPDF extracts tables from born-digital PDF files using a pure
geometric pipeline: table region detection, column/row layout
extraction, and cell resolution over the glyph stream.

Features:
  - Table extraction via TableFinder / LayoutExtractor / CellResolver
  - Text extraction with position information
  - CSV, JSON, and Excel export

Examples:
  gxpdf tables invoice.pdf --format csv
  gxpdf info document.pdf
  gxpdf tables bank_statement.pdf --export tables/ --export_format excel

Documentation: https://github.com/coregx/gxpdf`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags.
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text, json, csv")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Add subcommands.
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(textCmd)
}

// printVerbosef prints a message if verbose mode is enabled.
func printVerbosef(format string, args ...interface{}) {
	if verbose {
		fmt.Printf(format+"\n", args...)
	}
}
