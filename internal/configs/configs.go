/*
Package configs is responsible for loading and parsing the application's configuration settings.

Server parameters are read from operating system environment variables, including the
running environment, port, CORS allowed origins, and the remote word provider endpoints.
*/
package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default remote word providers, tried in order before the local backup list.
// Each must return a JSON array whose first element is a candidate word.
var defaultWordEndpoints = []string{
	"https://random-word-api.herokuapp.com/word?length=5",
	"https://random-word-form.herokuapp.com/random/noun?count=1",
}

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Security Settings
	AllowedOrigins []string

	// Word Provider Settings
	WordEndpoints    []string
	WordFetchTimeout time.Duration
}

// LoadConfig reads and parses the application configuration from environment variables.
// It provides default values for each configuration item and performs necessary type
// conversions and validation.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Security Settings ---
	originsStr := os.Getenv("ALLOWED_ORIGINS")
	if originsStr != "" {
		origins := strings.Split(originsStr, ",")
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{}
	}

	// --- Word Provider Settings ---
	endpointsStr := os.Getenv("WORD_API_URLS")
	if endpointsStr != "" {
		endpoints := strings.Split(endpointsStr, ",")
		for _, endpoint := range endpoints {
			trimmed := strings.TrimSpace(endpoint)
			if trimmed != "" {
				cfg.WordEndpoints = append(cfg.WordEndpoints, trimmed)
			}
		}
	} else {
		cfg.WordEndpoints = defaultWordEndpoints
	}

	timeoutStr := os.Getenv("WORD_FETCH_TIMEOUT")
	if timeoutStr == "" {
		timeoutStr = "3s"
	}
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WORD_FETCH_TIMEOUT environment variable: %w", err)
	}
	cfg.WordFetchTimeout = timeout

	return cfg, nil
}
