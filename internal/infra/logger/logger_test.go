package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/stone-inventory/internal/infra/logger"
)

func TestNewWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWriter("prod", &buf)
	log.Debug("hidden")
	log.Info("slab reserved", "id", "s-1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "slab reserved", line["msg"])
	assert.Equal(t, "s-1", line["id"])
	assert.Equal(t, "prod", line["env"])
	assert.NotContains(t, line, "source")

	buf.Reset()
	logger.NewWriter("dev", &buf).Debug("visible")
	assert.Contains(t, buf.String(), `"msg":"visible"`)
}
