package config

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// clearEnv unsets every variable Load reads; t.Setenv restores them after
// the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ACORN_ROOTS", "ACORN_LOG_LEVEL", "ACORN_LOG_FORMAT", "ACORN_HTTP_ADDR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", "testdata/empty.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("testdata/garage.toml", "testdata/empty.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{
		Roots: []string{"garage.models", "parking"},
		Log:   LogConfig{Level: "debug", Format: "json"},
		HTTP:  HTTPConfig{Addr: "127.0.0.1:9090"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ACORN_ROOTS", " garage , ,parking ")
	t.Setenv("ACORN_LOG_FORMAT", "json")

	cfg, err := Load("testdata/garage.toml", "testdata/empty.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if diff := cmp.Diff([]string{"garage", "parking"}, cfg.Roots); diff != "" {
		t.Errorf("roots mismatch (-want +got):\n%s", diff)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ACORN_HTTP_ADDR", ":6060") // already set, .env must not win

	cfg, err := Load("", "testdata/override.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.HTTP.Addr != ":6060" {
		t.Errorf("HTTP.Addr = %q, want :6060", cfg.HTTP.Addr)
	}
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	clearEnv(t)

	if _, err := Load("", "testdata/missing.env"); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoad_EmptyRootsSelectsEverything(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("testdata/all_roots.toml", "testdata/empty.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Roots) != 0 {
		t.Fatalf("expected no roots, got %v", cfg.Roots)
	}
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", "testdata/missing.toml", "decoding"},
		{"invalid level", "testdata/bad_level.toml", "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, "testdata/empty.env")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidate_Format(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

// ── Logger ───────────────────────────────────────────────────────────────────

func TestLogConfig_Logger(t *testing.T) {
	t.Run("json handler", func(t *testing.T) {
		var buf bytes.Buffer
		LogConfig{Level: "info", Format: "json"}.Logger(&buf).Info("hello")

		if !strings.HasPrefix(buf.String(), "{") {
			t.Fatalf("expected JSON output, got %q", buf.String())
		}
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		l := LogConfig{Level: "warn", Format: "text"}.Logger(&buf)
		l.Info("dropped")
		l.Warn("kept")

		out := buf.String()
		if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
			t.Fatalf("unexpected output: %q", out)
		}
	})
}
