package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/centraunit/shopkit/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("LevelFallback", func(t *testing.T) {
		log := logger.New("loud", "text", &bytes.Buffer{})
		assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	})

	t.Run("JSONFormat", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New("debug", "JSON", &buf)
		assert.Equal(t, logrus.DebugLevel, log.GetLevel())

		log.WithField("service", "shop.Wallet").Warn("service re-registered")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "warning", entry["level"])
		assert.Equal(t, "shop.Wallet", entry["service"])
	})
}
