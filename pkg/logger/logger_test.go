package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/estoquepro/estoque-api/pkg/logger"
)

func TestNew_CampoServiceEmTodaLinha(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "debug", Service: "estoque-api"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("ping")

	assert.Contains(t, buf.String(), `"service":"estoque-api"`)
	assert.Contains(t, buf.String(), `"message":"ping"`)
}

func TestNew_NivelPadraoEInvalido(t *testing.T) {
	l := logger.New(logger.Config{Env: "production"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel(), "nível vazio cai em info")

	l = logger.New(logger.Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())

	l = logger.New(logger.Config{Env: "production", Level: "gibberish"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}
