package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("MSP_API_BASE_URL", "")
	t.Setenv("MSP_API_TIMEOUT_SECONDS", "")

	cfg := FromEnv()

	assert.Equal(t, "http://localhost:8080/msp", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MSP_API_BASE_URL", "https://intake.example.gov/msp")
	t.Setenv("MSP_API_TIMEOUT_SECONDS", "5")

	cfg := FromEnv()

	assert.Equal(t, "https://intake.example.gov/msp", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestFromEnvIgnoresBadTimeout(t *testing.T) {
	t.Setenv("MSP_API_TIMEOUT_SECONDS", "not-a-number")

	cfg := FromEnv()

	assert.Equal(t, 30*time.Second, cfg.Timeout)
}
