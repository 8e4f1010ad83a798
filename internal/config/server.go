package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ServerConfig holds HTTP server settings read from the environment.
type ServerConfig struct {
	Port            int
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// NewServerConfig reads PORT (default: 8080), CORS_ALLOWED_ORIGINS (comma-separated,
// default: *) and SHUTDOWN_TIMEOUT_SECONDS (default: 10).
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	timeoutStr := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		timeoutStr = "10"
	}
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT_SECONDS: %v", err)
	}

	config := &ServerConfig{
		Port:            port,
		AllowedOrigins:  parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		ShutdownTimeout: time.Duration(timeout) * time.Second,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetPort overrides the port read from PORT, applying the same range check.
func (c *ServerConfig) SetPort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port out of range: %d", port)
	}
	c.Port = port
	return nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.ShutdownTimeout < time.Second {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be at least 1, got: %d", int(c.ShutdownTimeout/time.Second))
	}
	return nil
}
