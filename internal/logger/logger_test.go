package logger_test

import (
	"bytes"
	"testing"

	"battle-of-monsters/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetLevel_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.SetLevel(&buf, zerolog.WarnLevel)

	log.Info().Msg("quiet")
	log.Warn().Str("monster", "Dead Unicorn").Msg("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, `"message":"loud"`)
	assert.Contains(t, out, `"monster":"Dead Unicorn"`)
	assert.Contains(t, out, `"caller":`)
}
