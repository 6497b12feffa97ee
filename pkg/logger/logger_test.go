package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONComServico(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Service: "backoffice", Output: &buf})

	l.Info().Str("rota", "/api/clients").Msg("ok")
	l.Debug().Msg("não deve aparecer")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "backoffice", line["service"])
	assert.Equal(t, "/api/clients", line["rota"])
	assert.Equal(t, "info", line["level"])
}

func TestParseLevel_InvalidoViraInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel("barulho"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
}
