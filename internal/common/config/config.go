// Package config loads the back-office client configuration.
//
// Precedence, lowest to highest: built-in defaults, optional JSON config
// file, environment variables. The env names match what the deployment
// already exports for the admin application (DELIVERY_GRPC_HOST,
// OMS_GRPC_HOST, OMS_GRPC_PORT).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the full configuration of the service-client layer.
type Config struct {
	Delivery DeliveryConfig `json:"delivery"`
	OMS      OMSConfig      `json:"oms"`
	Consul   ConsulConfig   `json:"consul"`
	Jaeger   JaegerConfig   `json:"jaeger"`
	Log      LogConfig      `json:"log"`
}

// DeliveryConfig targets the Delivery/Courier service.
type DeliveryConfig struct {
	// Target is the host:port of the Delivery gRPC endpoint.
	Target string `json:"target"`
	// TLSEnabled switches the channel from insecure to TLS.
	// The deployed services currently run without TLS; see DESIGN.md.
	TLSEnabled bool `json:"tls_enabled"`
	// CACertPath is the CA bundle used when TLSEnabled is set.
	CACertPath string `json:"ca_cert_path"`
	// CallTimeoutSeconds is applied per call when the caller's context
	// carries no deadline.
	CallTimeoutSeconds int `json:"call_timeout_seconds"`
}

// OMSConfig targets the Order Management service. Host and port are split
// because the deployment exports them as two variables.
type OMSConfig struct {
	Host               string `json:"host"`
	Port               int    `json:"port"`
	TLSEnabled         bool   `json:"tls_enabled"`
	CACertPath         string `json:"ca_cert_path"`
	CallTimeoutSeconds int    `json:"call_timeout_seconds"`
}

// Target returns the dial target for the OMS endpoint.
func (c OMSConfig) Target() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ConsulConfig locates the optional Consul agent used as a KV config source.
type ConsulConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// JaegerConfig configures the tracer.
type JaegerConfig struct {
	Endpoint string  `json:"endpoint"`
	Sampler  float64 `json:"sampler"` // sampling rate 0.0-1.0
}

// LogConfig configures the logger backend.
type LogConfig struct {
	Level   string `json:"level"`   // debug, info, warn, error
	Format  string `json:"format"`  // json, text
	Backend string `json:"backend"` // logrus, zap
}

// CallTimeout converts the configured seconds to a duration, falling back
// to the 5s default.
func CallTimeout(seconds int) time.Duration {
	if seconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// Load reads configuration: defaults, then the JSON file at path (if any),
// then environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults + env
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// Default returns the development defaults, matching the local
// docker-compose ports of the two services.
func Default() *Config {
	return &Config{
		Delivery: DeliveryConfig{
			Target:             "localhost:50051",
			CallTimeoutSeconds: 5,
		},
		OMS: OMSConfig{
			Host:               "localhost",
			Port:               50052,
			CallTimeoutSeconds: 5,
		},
		Consul: ConsulConfig{
			Host: "localhost",
			Port: 8500,
		},
		Jaeger: JaegerConfig{
			Endpoint: "localhost:6831",
			Sampler:  1.0,
		},
		Log: LogConfig{
			Level:   "info",
			Format:  "text",
			Backend: "logrus",
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DELIVERY_GRPC_HOST"); v != "" {
		cfg.Delivery.Target = v
	}
	if v := os.Getenv("OMS_GRPC_HOST"); v != "" {
		cfg.OMS.Host = v
	}
	if v := os.Getenv("OMS_GRPC_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.OMS.Port = port
		}
	}
	if v := os.Getenv("BACKOFFICE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("BACKOFFICE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("JAEGER_AGENT_ENDPOINT"); v != "" {
		cfg.Jaeger.Endpoint = v
	}
}
