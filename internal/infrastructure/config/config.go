package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the risk assessment service.
type Config struct {
	HTTPPort     string
	GRPCPort     string
	KafkaBroker  string
	KafkaTopic   string
	Environment  string
	LogLevel     string
	LogFormat    string
	RateLimitRPS int
}

// Load reads configuration from environment variables with sensible
// defaults. An empty KAFKA_BROKER disables event publishing.
func Load() *Config {
	return &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		GRPCPort:     getEnv("GRPC_PORT", "9090"),
		KafkaBroker:  getEnv("KAFKA_BROKER", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "property.risk.events"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		RateLimitRPS: getEnvInt("RATE_LIMIT_RPS", 50),
	}
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

// GRPCAddress returns the full gRPC listen address.
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%s", c.GRPCPort)
}

// KafkaEnabled reports whether event publishing to Kafka is configured.
func (c *Config) KafkaEnabled() bool {
	return c.KafkaBroker != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
