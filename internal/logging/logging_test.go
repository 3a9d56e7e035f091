package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New("debug", true)
	if assert.NoError(t, err) {
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	}

	logger, err = New("warn", false)
	if assert.NoError(t, err) {
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	}

	_, err = New("loud", false)
	assert.Error(t, err)
}
