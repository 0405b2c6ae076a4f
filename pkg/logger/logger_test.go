package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriter_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "warn")

	l.Info().Msg("no debe aparecer")
	assert.Zero(t, buf.Len())

	l.Component("categorias").Warn().Str("id", "c1").Msg("cache caído")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "categorias", line["component"])
	assert.Equal(t, "c1", line["id"])
}

func TestParseLevel_Desconocido(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "verbose")
	l.Debug().Msg("x")
	assert.Zero(t, buf.Len(), "nivel desconocido cae a info")
}
