package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("builds development logger", func(t *testing.T) {
		log, err := New("development", "debug")
		require.NoError(t, err)
		require.NotNil(t, log.SugaredLogger)
		log.Info("hello", "k", "v")
	})

	t.Run("builds production logger", func(t *testing.T) {
		log, err := New("production", "info")
		require.NoError(t, err)
		assert.NotNil(t, log.With("service", "test").SugaredLogger)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := New("development", "loud")
		assert.Error(t, err)
	})

	t.Run("empty level keeps preset", func(t *testing.T) {
		_, err := New("test", "")
		assert.NoError(t, err)
	})
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Debug("discarded")
	log.Warn("discarded", "n", 1)
	log.Error("discarded")
	log.Sync()
}
