package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultMatchesBuiltin(t *testing.T) {
	if !reflect.DeepEqual(Default(), builtin()) {
		t.Errorf("embedded defaults differ from builtin:\n%+v\n%+v", Default(), builtin())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
	if Default().Server.IdleTimeout != 10*time.Minute {
		t.Errorf("idle timeout = %v, expected 10m", Default().Server.IdleTimeout)
	}
}

func TestLoadCustomOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
display:
  fps: 30
  colors:
    food: "#00FF00"
keys:
  up: [i]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.FPS != 30 {
		t.Errorf("fps = %d, expected 30", cfg.Display.FPS)
	}
	if cfg.Display.Colors["food"] != "#00FF00" {
		t.Errorf("food colour = %q, expected override", cfg.Display.Colors["food"])
	}
	if cfg.Display.Colors["head"] != "#E69940" {
		t.Errorf("head colour = %q, expected default kept", cfg.Display.Colors["head"])
	}
	if !reflect.DeepEqual(cfg.Keys.Up, []string{"i"}) {
		t.Errorf("up keys = %v, expected [i]", cfg.Keys.Up)
	}
	if !reflect.DeepEqual(cfg.Keys.Down, []string{"down", "s", "j"}) {
		t.Errorf("down keys = %v, expected defaults", cfg.Keys.Down)
	}
	if cfg.Source() != path {
		t.Errorf("source = %q, expected %q", cfg.Source(), path)
	}
}

func TestLoadCustomMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("missing custom config should fail")
	}
}

func TestLoadCustomMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "display: [not, a, map\n")

	if _, err := Load(path); err == nil {
		t.Error("malformed config should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source() != "embedded" {
		t.Errorf("source = %q, expected embedded", cfg.Source())
	}

	writeFile(t, filepath.Join(work, localPath), "display:\n  fps: 24\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.FPS != 24 {
		t.Errorf("fps = %d, expected 24 from the local file", cfg.Display.FPS)
	}

	writeFile(t, filepath.Join(home, ".copperhead", "config.yaml"), "display:\n  fps: 50\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.FPS != 50 {
		t.Errorf("fps = %d, expected 50 from the user file", cfg.Display.FPS)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero fps", func(c *Config) { c.Display.FPS = 0 }},
		{"unknown colour role", func(c *Config) { c.Display.Colors["tongue"] = "#FF0000" }},
		{"no quit keys", func(c *Config) { c.Keys.Quit = nil }},
		{"no activate keys", func(c *Config) { c.Keys.Activate = []string{} }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"negative idle timeout", func(c *Config) { c.Server.IdleTimeout = -time.Second }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "log:\n  level: shouting\n")

	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load error = %v, expected ErrInvalid", err)
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"fps: 60", "idle_timeout: 10m0s", "body_dark:"} {
		if !strings.Contains(out, want) {
			t.Errorf("marshalled config should contain %q:\n%s", want, out)
		}
	}
}

func TestKeyLabel(t *testing.T) {
	if KeyLabel(" ") != "space" {
		t.Errorf("KeyLabel(\" \") = %q, expected space", KeyLabel(" "))
	}
	if KeyLabel("enter") != "enter" {
		t.Errorf("KeyLabel(enter) = %q", KeyLabel("enter"))
	}
}
