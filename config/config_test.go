package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "krishichakra.db", cfg.DBPath)
	assert.Equal(t, "http://localhost:8001", cfg.RAGEndpoint)
	assert.Equal(t, "deepseek/deepseek-chat", cfg.SimplifyModel)
	assert.Equal(t, "meta-llama/llama-3.3-70b-instruct", cfg.SimplifyFallbackModel)
	assert.True(t, cfg.BhuvanSimulate)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ROTATION_BACKEND_URL", "http://backend:3000")
	t.Setenv("BHUVAN_SIMULATE", "false")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://backend:3000", cfg.RotationBackendURL)
	assert.False(t, cfg.BhuvanSimulate)
}
