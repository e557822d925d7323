package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("BUSINESS_OPEN", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 9*60, cfg.BusinessHours.OpenMinute)
	assert.Equal(t, 20*60, cfg.BusinessHours.CloseMinute)
	assert.Equal(t, 10*time.Minute, cfg.BusinessHours.Step)
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:4321")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ORIGINS", " https://a.cl , ,https://b.cl")
	t.Setenv("BUSINESS_OPEN", "08:30")
	t.Setenv("BUSINESS_CLOSE", "18:00")
	t.Setenv("SLOT_STEP_MINUTES", "15")
	t.Setenv("BUSINESS_UTC_OFFSET_HOURS", "-4")
	t.Setenv("OTEL_SAMPLING_RATIO", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.cl", "https://b.cl"}, cfg.CORSOrigins)
	assert.Equal(t, 8*60+30, cfg.BusinessHours.OpenMinute)
	assert.Equal(t, 15*time.Minute, cfg.BusinessHours.Step)
	assert.Equal(t, 1.0, cfg.OTelSampleRatio)

	_, offset := time.Date(2030, 1, 1, 0, 0, 0, 0, cfg.BusinessHours.Location).Zone()
	assert.Equal(t, -4*60*60, offset)
}

func TestLoadRejectsBadHours(t *testing.T) {
	t.Setenv("BUSINESS_OPEN", "20:00")
	t.Setenv("BUSINESS_CLOSE", "09:00")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("BUSINESS_OPEN", "09:00")
	t.Setenv("SLOT_STEP_MINUTES", "ten")
	_, err = Load()
	assert.Error(t, err)
}
