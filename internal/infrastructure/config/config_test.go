package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telelink/customer-analytics/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "8086", cfg.GRPCPort)
	assert.Equal(t, "9086", cfg.HTTPPort)
	assert.Equal(t, "analytics.events", cfg.EventTopic)
	assert.Equal(t, "./artifacts", cfg.ArtifactDir)
	assert.Equal(t, 0.2, cfg.RiskMediumCut)
	assert.Equal(t, 0.4, cfg.RiskHighCut)
	assert.Equal(t, 8, cfg.BatchConcurrency)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GRPC_PORT", "7000")
	t.Setenv("RISK_MEDIUM_CUT", "0.25")
	t.Setenv("RISK_HIGH_CUT", "0.55")
	t.Setenv("BATCH_CONCURRENCY", "16")

	cfg := config.Load()

	assert.Equal(t, "7000", cfg.GRPCPort)
	assert.Equal(t, ":7000", cfg.GRPCAddress())
	assert.Equal(t, 0.25, cfg.RiskMediumCut)
	assert.Equal(t, 0.55, cfg.RiskHighCut)
	assert.Equal(t, 16, cfg.BatchConcurrency)
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("RISK_MEDIUM_CUT", "not-a-number")
	t.Setenv("BATCH_CONCURRENCY", "lots")

	cfg := config.Load()

	assert.Equal(t, 0.2, cfg.RiskMediumCut)
	assert.Equal(t, 8, cfg.BatchConcurrency)
}
