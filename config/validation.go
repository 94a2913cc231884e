package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateArXivConfig(&config.ArXiv); err != nil {
		return fmt.Errorf("arxiv config validation failed: %w", err)
	}

	if err := validateAuthConfig(&config.Auth); err != nil {
		return fmt.Errorf("auth config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("HTTP config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be positive, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateArXivConfig(config *ArXivConfig) error {
	if err := validateURL(config.BaseURL); err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	if config.MaxResults < 1 || config.MaxResults > 100 {
		return fmt.Errorf("max results must be between 1 and 100, got %d", config.MaxResults)
	}

	return nil
}

func validateAuthConfig(config *AuthConfig) error {
	if err := validateURL(config.KratosPublicURL); err != nil {
		return fmt.Errorf("invalid Kratos public URL: %w", err)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", config.Level)
	}

	switch strings.ToLower(config.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", config.Format)
	}

	return nil
}

func validateHTTPConfig(config *HTTPConfig) error {
	if config.ClientTimeout <= 0 {
		return fmt.Errorf("client timeout must be positive, got %v", config.ClientTimeout)
	}

	return nil
}

func validateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("URL must have scheme and host, got %q", raw)
	}

	return nil
}
