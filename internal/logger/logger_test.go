package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		level string
		debug bool
		info  bool
	}{
		{level: "debug", debug: true, info: true},
		{level: "info", debug: false, info: true},
		{level: "", debug: false, info: true},
		{level: "error", debug: false, info: false},
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			log, err := New(tc.level, "json", "eckshop-test")
			require.NoError(t, err)
			assert.Equal(t, tc.debug, log.Core().Enabled(zap.DebugLevel))
			assert.Equal(t, tc.info, log.Core().Enabled(zap.InfoLevel))
		})
	}
}

func TestNewConsoleFormat(t *testing.T) {
	log, err := New("warn", "console", "")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))
}
