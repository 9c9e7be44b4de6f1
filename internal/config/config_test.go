package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("DB_MAX_CONNS", "")
	t.Setenv("DB_MIN_CONNS", "")
	t.Setenv("PAYROLL_BATCH_WORKERS", "")
}

func TestLoad_PoolSizeDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.Equal(t, 5, cfg.Database.MinConns)
	assert.Equal(t, 8, cfg.Payroll.BatchWorkers)
}

func TestLoad_PoolSizeOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "40")
	t.Setenv("DB_MIN_CONNS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Database.MaxConns)
	assert.Equal(t, 10, cfg.Database.MinConns)
}

func TestLoad_PoolSizeValidation(t *testing.T) {
	tests := []struct {
		name     string
		maxConns string
		minConns string
	}{
		{"min above max", "10", "20"},
		{"zero max", "0", "0"},
		{"non-numeric max", "many", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("DB_MAX_CONNS", tt.maxConns)
			t.Setenv("DB_MIN_CONNS", tt.minConns)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
