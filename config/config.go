package config

import (
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	ArXiv     ArXivConfig     `json:"arxiv"`
	Auth      AuthConfig      `json:"auth"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Logging   LoggingConfig   `json:"logging"`
	HTTP      HTTPConfig      `json:"http"`
	Session   SessionConfig   `json:"session"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9400"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

// ArXivConfig configures the bibliographic search upstream. MaxResults
// is a fixed page size; the API is always queried from offset zero.
type ArXivConfig struct {
	BaseURL    string `json:"base_url" env:"ARXIV_BASE_URL" default:"https://export.arxiv.org/api"`
	MaxResults int    `json:"max_results" env:"ARXIV_MAX_RESULTS" default:"20"`
}

type AuthConfig struct {
	KratosPublicURL string `json:"kratos_public_url" env:"KRATOS_PUBLIC_URL" default:"http://kratos:4433"`
}

type RateLimitConfig struct {
	ExternalAPIInterval time.Duration `json:"external_api_interval" env:"RATE_LIMIT_EXTERNAL_API_INTERVAL" default:"3s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type HTTPConfig struct {
	ClientTimeout       time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	DialTimeout         time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"10s"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"HTTP_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
}

type SessionConfig struct {
	EventBufferSize int `json:"event_buffer_size" env:"SESSION_EVENT_BUFFER_SIZE" default:"64"`
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig
func Load() (*Config, error) {
	return NewConfig()
}
