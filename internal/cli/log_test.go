package cli

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, NewLogger(false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, NewLogger(true).GetLevel())
}
