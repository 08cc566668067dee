package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viaconsulting/dashboard-huiles/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("bavard"))
}

func TestComponent_ChampsFixes(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Service: "dashboard", Out: &buf})

	st := l.Component("store")
	st.Info().Msg("ignoré")
	st.Warn().Int64("reception_id", 3).Msg("rechargement en échec")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "dashboard", line["service"])
	assert.Equal(t, "store", line["component"])
	assert.Equal(t, "warn", line["level"])
	assert.EqualValues(t, 3, line["reception_id"])
}
