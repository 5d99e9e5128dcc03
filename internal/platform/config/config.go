package config

import (
	"os"
	"strconv"
	"time"
)

// Intake captures configuration for the MSP intake service connection.
type Intake struct {
	BaseURL string
	Timeout time.Duration
}

// FromEnv builds an Intake config from environment variables so main stays lean.
func FromEnv() Intake {
	baseURL := os.Getenv("MSP_API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080/msp"
	}

	timeout := 30 * time.Second
	if raw := os.Getenv("MSP_API_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return Intake{
		BaseURL: baseURL,
		Timeout: timeout,
	}
}
