// Package config loads service configuration from environment
// variables with sensible defaults.
package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the algorithm service
type Config struct {
	// gRPC control surface
	GRPCHost string
	GRPCPort int

	// Prometheus endpoint; 0 disables it
	MetricsPort int

	// Result delivery; empty disables remote reporting
	ReporterTarget string

	// Filesystem layout
	DataDir   string
	ResultDir string
	LogDir    string

	// Logging
	LogLevel string
}

// Load reads configuration from the environment.
func Load() Config {
	v := viper.New()

	v.SetDefault("ALGO_GRPC_HOST", "0.0.0.0")
	v.SetDefault("ALGO_GRPC_PORT", 50051)
	v.SetDefault("ALGO_METRICS_PORT", 9100)
	v.SetDefault("RESULT_REPORTER_TARGET", "")
	v.SetDefault("ALGO_DATA_DIR", "./data")
	v.SetDefault("ALGO_RESULT_DIR", "./result")
	v.SetDefault("ALGO_LOG_DIR", "./logs")
	v.SetDefault("ALGO_LOG_LEVEL", "info")

	for _, key := range []string{
		"ALGO_GRPC_HOST",
		"ALGO_GRPC_PORT",
		"ALGO_METRICS_PORT",
		"RESULT_REPORTER_TARGET",
		"ALGO_DATA_DIR",
		"ALGO_RESULT_DIR",
		"ALGO_LOG_DIR",
		"ALGO_LOG_LEVEL",
	} {
		_ = v.BindEnv(key)
	}

	return Config{
		GRPCHost:       v.GetString("ALGO_GRPC_HOST"),
		GRPCPort:       v.GetInt("ALGO_GRPC_PORT"),
		MetricsPort:    v.GetInt("ALGO_METRICS_PORT"),
		ReporterTarget: v.GetString("RESULT_REPORTER_TARGET"),
		DataDir:        v.GetString("ALGO_DATA_DIR"),
		ResultDir:      v.GetString("ALGO_RESULT_DIR"),
		LogDir:         v.GetString("ALGO_LOG_DIR"),
		LogLevel:       v.GetString("ALGO_LOG_LEVEL"),
	}
}
