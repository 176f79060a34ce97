// Package config loads the daemon settings.
//
// The file is optional YAML; every key has a default so the service runs
// with no configuration at all, listening on all interfaces on port 80 and
// talking to the local Docker socket.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/docker/docker/client"
	"github.com/rusenback/docker-stats/internal/collector"
	"github.com/rusenback/docker-stats/internal/docker"
	"gopkg.in/yaml.v3"
)

const (
	DefaultListen   = "0.0.0.0:80"
	DefaultLogLevel = "info"
)

// Config holds the service settings.
type Config struct {
	Listen         string        `yaml:"listen"`
	DockerHost     string        `yaml:"docker_host"`
	TLSVerify      bool          `yaml:"tls_verify"`
	CertPath       string        `yaml:"cert_path"`       // directory holding ca.pem, cert.pem, key.pem
	ConnectTimeout time.Duration `yaml:"connect_timeout"` // startup ping to the engine
	FetchTimeout   time.Duration `yaml:"fetch_timeout"`   // per container, 0 disables
	Concurrency    int           `yaml:"concurrency"`     // 0 means one goroutine per container
	LogLevel       string        `yaml:"log_level"`
}

func Default() Config {
	host := os.Getenv("DOCKER_HOST")
	if host == "" {
		host = client.DefaultDockerHost
	}
	return Config{
		Listen:         DefaultListen,
		DockerHost:     host,
		TLSVerify:      os.Getenv("DOCKER_TLS_VERIFY") != "",
		CertPath:       os.Getenv("DOCKER_CERT_PATH"),
		ConnectTimeout: docker.DefaultConfig().Timeout,
		FetchTimeout:   collector.DefaultFetchTimeout,
		LogLevel:       DefaultLogLevel,
	}
}

// Docker returns the engine connection settings.
func (c Config) Docker() docker.Config {
	return docker.Config{
		Host:      c.DockerHost,
		TLSVerify: c.TLSVerify,
		CertPath:  c.CertPath,
		Timeout:   c.ConnectTimeout,
	}
}

// Load reads the file at path over the defaults. An empty path or a
// missing file yields the defaults (not an error).
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the service cannot run with.
func (c Config) Validate() error {
	if c.Listen == "" {
		return errors.New("listen address must not be empty")
	}
	if c.DockerHost == "" {
		return errors.New("docker_host must not be empty")
	}
	if c.TLSVerify && c.CertPath == "" {
		return errors.New("cert_path is required when tls_verify is set")
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("connect_timeout must be positive, got %s", c.ConnectTimeout)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must not be negative, got %s", c.FetchTimeout)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	return nil
}
