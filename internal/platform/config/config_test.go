package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "RATE_LIMIT", "MAX_RANGE_DAYS", "CORS_ALLOWED_ORIGINS", "CASHFLOW_INCLUDE_INACTIVE", "SUMMARY_INCLUDE_INACTIVE", "DRE_INCLUDE_INACTIVE"} {
		t.Setenv(key, "")
	}
	v := viper.New()
	v.Set("BUSINESS_TIMEZONE", "UTC")
	cfg, err := loadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, DefaultMaxRangeDays, cfg.MaxRangeDays)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IncludeInactive.CashFlow)
	assert.False(t, cfg.IncludeInactive.Summary)
	assert.True(t, cfg.IncludeInactive.DRE)
	assert.Equal(t, time.UTC, cfg.BusinessTimezone)
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "9090")
	v.Set("MAX_RANGE_DAYS", 366)
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	v.Set("CASHFLOW_INCLUDE_INACTIVE", true)
	v.Set("DRE_INCLUDE_INACTIVE", false)
	v.Set("BUSINESS_TIMEZONE", "Not/AZone")

	cfg, err := loadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 366, cfg.MaxRangeDays)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.IncludeInactive.CashFlow)
	assert.False(t, cfg.IncludeInactive.DRE)
	assert.Equal(t, time.UTC, cfg.BusinessTimezone, "invalid zone falls back to UTC")
}

func TestLoadRejectsNonPositiveRange(t *testing.T) {
	v := viper.New()
	v.Set("MAX_RANGE_DAYS", -5)
	v.Set("BUSINESS_TIMEZONE", "UTC")

	cfg, err := loadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxRangeDays, cfg.MaxRangeDays)
}
