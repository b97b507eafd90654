// Package config parses doorbell's command-line flags, optionally
// merged with a YAML file, into a single Config value. It follows the
// flag-plus-optional-YAML-overlay shape skipper's config package uses,
// trimmed to the settings an acceptor and a forwarding service actually
// consume.
package config

import (
	"crypto/tls"
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	defaultAddress         = ":9090"
	defaultApplicationLog  = "INFO"
	defaultForwardTimeout  = 30 * time.Second
	defaultMetricsListener = ":9911"
)

// Config holds every setting a doorbell acceptor needs to bind, serve,
// and forward requests. Fields are tagged for YAML so a config file can
// override flag defaults the same way skipper's does.
type Config struct {
	ConfigFile string `yaml:"-"`

	Address             string        `yaml:"address"`
	TLSCertFile         string        `yaml:"tls-cert"`
	TLSKeyFile          string        `yaml:"tls-key"`
	ForwardTimeout      time.Duration `yaml:"forward-timeout"`
	EnablePrometheus    bool          `yaml:"enable-prometheus-metrics"`
	MetricsListener     string        `yaml:"metrics-listener"`
	ApplicationLogLevel string        `yaml:"application-log-level"`

	// ParsedLogLevel is derived from ApplicationLogLevel during Parse;
	// it is not itself a flag or a YAML field.
	ParsedLogLevel log.Level `yaml:"-"`
}

// NewConfig registers doorbell's flags against flag.CommandLine and
// returns a Config populated with their defaults.
func NewConfig() *Config {
	cfg := new(Config)

	flag.StringVar(&cfg.ConfigFile, "config-file", "", "if set, load settings from this YAML file before applying flags")
	flag.StringVar(&cfg.Address, "address", defaultAddress, "address to listen on")
	flag.StringVar(&cfg.TLSCertFile, "tls-cert", "", "path to a PEM-encoded TLS certificate; enables HTTPS when set with -tls-key")
	flag.StringVar(&cfg.TLSKeyFile, "tls-key", "", "path to a PEM-encoded TLS private key")
	flag.DurationVar(&cfg.ForwardTimeout, "forward-timeout", defaultForwardTimeout, "timeout applied to the HTTP client used to forward requests upstream")
	flag.BoolVar(&cfg.EnablePrometheus, "enable-prometheus-metrics", false, "expose request metrics on -metrics-listener")
	flag.StringVar(&cfg.MetricsListener, "metrics-listener", defaultMetricsListener, "address the Prometheus /metrics endpoint listens on")
	flag.StringVar(&cfg.ApplicationLogLevel, "application-log-level", defaultApplicationLog, "logrus level: PANIC, FATAL, ERROR, WARN, INFO, DEBUG or TRACE")

	return cfg
}

// Parse parses args as command-line flags, overlays a YAML config file when
// -config-file is set, re-parses flags so command-line values win over
// the file, and validates the TLS and log-level settings.
func (c *Config) Parse(args []string) error {
	if err := flag.CommandLine.Parse(args); err != nil {
		return err
	}

	if c.ConfigFile != "" {
		raw, err := os.ReadFile(c.ConfigFile)
		if err != nil {
			return fmt.Errorf("invalid config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, c); err != nil {
			return fmt.Errorf("unmarshalling config file: %w", err)
		}
		if err := flag.CommandLine.Parse(args); err != nil {
			return err
		}
	}

	level, err := log.ParseLevel(c.ApplicationLogLevel)
	if err != nil {
		return fmt.Errorf("invalid application-log-level: %w", err)
	}
	c.ParsedLogLevel = level

	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return fmt.Errorf("tls-cert and tls-key must both be set or both be empty")
	}

	return nil
}

// TLSEnabled reports whether Parse found a complete cert/key pair.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != ""
}

// LoadTLSConfig builds a server-side tls.Config from the configured
// certificate and key. Only callable when TLSEnabled returns true.
func (c *Config) LoadTLSConfig() (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(c.TLSCertFile, c.TLSKeyFile)
	if err != nil {
		return nil, fmt.Errorf("invalid key/cert pair: %w", err)
	}
	return &tls.Config{Certificates: []tls.Certificate{cert}}, nil
}
