package cli

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a console-writer zerolog.Logger gated by --verbose.
// The core packages never log (§5); this is strictly a dispatcher/CLI
// boundary concern, replacing the teacher's single-goroutine
// printVerbosef with something safe to call from the --workers pool.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
