package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.GRPCHost)
	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, "", cfg.ReporterTarget)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "./result", cfg.ResultDir)
	assert.Equal(t, "./logs", cfg.LogDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ALGO_GRPC_HOST", "127.0.0.1")
	t.Setenv("ALGO_GRPC_PORT", "6000")
	t.Setenv("RESULT_REPORTER_TARGET", "localhost:9090")

	cfg := Load()

	assert.Equal(t, "127.0.0.1", cfg.GRPCHost)
	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, "localhost:9090", cfg.ReporterTarget)
}
