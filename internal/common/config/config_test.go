package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Delivery.Target != "localhost:50051" {
		t.Errorf("Delivery.Target = %q", cfg.Delivery.Target)
	}
	if cfg.OMS.Target() != "localhost:50052" {
		t.Errorf("OMS.Target() = %q", cfg.OMS.Target())
	}
	if cfg.Log.Level != "info" || cfg.Log.Backend != "logrus" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load with missing file: %v", err)
	}
	if cfg.Delivery.Target != "localhost:50051" {
		t.Errorf("Delivery.Target = %q", cfg.Delivery.Target)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"delivery": {"target": "delivery.svc:9090", "call_timeout_seconds": 10},
		"oms": {"host": "oms.svc", "port": 9091},
		"log": {"level": "debug"}
	}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Delivery.Target != "delivery.svc:9090" {
		t.Errorf("Delivery.Target = %q", cfg.Delivery.Target)
	}
	if cfg.Delivery.CallTimeoutSeconds != 10 {
		t.Errorf("CallTimeoutSeconds = %d", cfg.Delivery.CallTimeoutSeconds)
	}
	if cfg.OMS.Target() != "oms.svc:9091" {
		t.Errorf("OMS.Target() = %q", cfg.OMS.Target())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	// untouched sections keep their defaults
	if cfg.Consul.Port != 8500 {
		t.Errorf("Consul.Port = %d", cfg.Consul.Port)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("DELIVERY_GRPC_HOST", "delivery.prod:50051")
	t.Setenv("OMS_GRPC_HOST", "oms.prod")
	t.Setenv("OMS_GRPC_PORT", "6000")
	t.Setenv("BACKOFFICE_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Delivery.Target != "delivery.prod:50051" {
		t.Errorf("Delivery.Target = %q", cfg.Delivery.Target)
	}
	if cfg.OMS.Target() != "oms.prod:6000" {
		t.Errorf("OMS.Target() = %q", cfg.OMS.Target())
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestEnvIgnoresBadPort(t *testing.T) {
	t.Setenv("OMS_GRPC_PORT", "not-a-port")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OMS.Port != 50052 {
		t.Errorf("OMS.Port = %d, want default 50052", cfg.OMS.Port)
	}
}

func TestCallTimeout(t *testing.T) {
	if got := CallTimeout(0); got != 5*time.Second {
		t.Errorf("CallTimeout(0) = %v, want 5s", got)
	}
	if got := CallTimeout(-1); got != 5*time.Second {
		t.Errorf("CallTimeout(-1) = %v, want 5s", got)
	}
	if got := CallTimeout(30); got != 30*time.Second {
		t.Errorf("CallTimeout(30) = %v, want 30s", got)
	}
}
