package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Server describes one listening tier.
type Server struct {
	Host            string `yaml:"host"`
	ApplicationPort int    `yaml:"application_port"`
	CertFile        string `yaml:"cert_file"`
	KeyFile         string `yaml:"key_file"`
	CAFile          string `yaml:"ca_file"`
	ServerName      string `yaml:"server_name"`
	MetricsAddr     string `yaml:"metrics_addr"`
}

// Address returns host:port.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.ApplicationPort))
}

// TLSEnabled reports whether both a certificate and a key are configured.
func (s Server) TLSEnabled() bool {
	return s.CertFile != "" && s.KeyFile != ""
}

// MaxConnectAttempts bounds connect.max_attempts. Past it the doubling
// backoff stops being meaningful.
const MaxConnectAttempts = 30

// Connect controls how the gateway reaches the backend at startup.
type Connect struct {
	MaxAttempts int           `yaml:"max_attempts"`
	BaseDelay   time.Duration `yaml:"base_delay"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

type Config struct {
	Backend  Server  `yaml:"backend"`
	Frontend Server  `yaml:"frontend"`
	Connect  Connect `yaml:"connect"`
	LogLevel string  `yaml:"log_level"`
	LogJSON  bool    `yaml:"log_json"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Backend: Server{
			Host:            "127.0.0.1",
			ApplicationPort: 50051,
		},
		Frontend: Server{
			Host:            "127.0.0.1",
			ApplicationPort: 8000,
		},
		Connect: Connect{
			MaxAttempts: 5,
			BaseDelay:   500 * time.Millisecond,
			DialTimeout: 5 * time.Second,
		},
		LogLevel: "info",
	}
}

// LoadConfig loads configuration from a YAML file if path is provided,
// otherwise it starts from Default. Environment and flag overrides are
// applied by the command layer.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ports, retry bounds and TLS file pairs.
func (c *Config) Validate() error {
	for name, s := range map[string]Server{"backend": c.Backend, "frontend": c.Frontend} {
		if s.ApplicationPort < 0 || s.ApplicationPort > 65535 {
			return fmt.Errorf("%s.application_port out of range: %d", name, s.ApplicationPort)
		}
		if (s.CertFile == "") != (s.KeyFile == "") {
			return fmt.Errorf("%s: cert_file and key_file must be set together", name)
		}
	}
	if c.Connect.MaxAttempts < 0 || c.Connect.MaxAttempts > MaxConnectAttempts {
		return fmt.Errorf("connect.max_attempts must be between 0 and %d: %d", MaxConnectAttempts, c.Connect.MaxAttempts)
	}
	if c.Connect.BaseDelay <= 0 {
		return fmt.Errorf("connect.base_delay must be positive: %s", c.Connect.BaseDelay)
	}
	if c.Connect.DialTimeout <= 0 {
		return fmt.Errorf("connect.dial_timeout must be positive: %s", c.Connect.DialTimeout)
	}
	return nil
}

// String returns a one-line summary suitable for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("backend=%s (tls=%t) frontend=%s (tls=%t) connect=%d retries/%s log=%s",
		c.Backend.Address(), c.Backend.TLSEnabled(),
		c.Frontend.Address(), c.Frontend.TLSEnabled(),
		c.Connect.MaxAttempts, c.Connect.BaseDelay, c.LogLevel)
}
