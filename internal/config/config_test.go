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
		t.Fatal(err)
	}

	if cfg.Output.Dir != "signals" {
		t.Fatalf("output dir %q", cfg.Output.Dir)
	}
	if cfg.Chart.PNGWidth != 900 || cfg.Chart.PNGHeight != 420 {
		t.Fatalf("png size %dx%d", cfg.Chart.PNGWidth, cfg.Chart.PNGHeight)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr %q", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("shutdown timeout %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("log level %q", cfg.Logging.Level)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "output:\n  dir: out/pages\nserver:\n  addr: \":9090\"\n  shutdown_timeout: 5s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Output.Dir != "out/pages" {
		t.Fatalf("output dir %q", cfg.Output.Dir)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr %q", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Fatalf("shutdown timeout %s", cfg.Server.ShutdownTimeout)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output dir", func(c *Config) { c.Output.Dir = "" }},
		{"zero png width", func(c *Config) { c.Chart.PNGWidth = 0 }},
		{"empty server addr", func(c *Config) { c.Server.Addr = "" }},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatal(err)
			}
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
