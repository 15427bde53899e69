package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/wippyai/boardgen/backend/client"
	"github.com/wippyai/boardgen/backend/sdk"
	"github.com/wippyai/boardgen/backend/xps"
	"github.com/wippyai/boardgen/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), Name+".toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	c, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Output.Root != "." || c.Output.Server != "server" || c.Templates != "templates" {
		t.Errorf("defaults = %+v", c)
	}
	if !slices.Equal(c.Backends, Known) {
		t.Errorf("backends = %v", c.Backends)
	}
	if c.Log.Level != "info" || c.Log.Development {
		t.Errorf("log = %+v", c.Log)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
templates = "/srv/templates"
backends = ["sdk"]

[output]
root = "out"
server = "fw"

[log]
level = "debug"
development = true
`)
	c, err := Load(New(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	tests := []struct {
		name, got, want string
	}{
		{"root", c.Output.Root, "out"},
		{"server", c.Output.Server, "fw"},
		{"client", c.Output.Client, "client"},
		{"templates", c.Templates, "/srv/templates"},
		{"level", c.Log.Level, "debug"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
	if !c.Log.Development {
		t.Error("development not set")
	}
	if !slices.Equal(c.Backends, []string{sdk.Name}) {
		t.Errorf("backends = %v", c.Backends)
	}
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BOARDGEN_LOG_LEVEL", "warn")
	t.Setenv("BOARDGEN_OUTPUT_PROJECT", "hw")
	c, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Log.Level != "warn" || c.Output.Project != "hw" {
		t.Errorf("env not applied: %+v", c)
	}
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name string
		file func(t *testing.T) string
	}{
		{"missing explicit file", func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "absent.toml")
		}},
		{"malformed file", func(t *testing.T) string {
			return writeConfig(t, "backends = [\n")
		}},
		{"unknown backend", func(t *testing.T) string {
			return writeConfig(t, `backends = ["client", "verilog"]`)
		}},
		{"empty selection", func(t *testing.T) string {
			return writeConfig(t, `backends = []`)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(New(), tt.file(t))
			if c != nil {
				t.Fatalf("Load = %+v, want failure", c)
			}
			if kind, _ := errors.KindOf(err); kind != errors.KindConfiguration {
				t.Errorf("err = %v, want configuration error", err)
			}
		})
	}
}

func TestSelected(t *testing.T) {
	c := &Config{
		Backends: []string{xps.Name, client.Name},
		Output:   Output{Client: "c", Project: "p"},
	}
	var names []string
	for _, be := range c.Selected() {
		names = append(names, be.Name())
	}
	if !slices.Equal(names, []string{xps.Name, client.Name}) {
		t.Errorf("selected = %v", names)
	}
}

func TestConfig_Logger(t *testing.T) {
	tests := []struct {
		level string
		ok    bool
	}{
		{"debug", true},
		{"error", true},
		{"loud", false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			c := &Config{Log: Log{Level: tt.level}}
			l, err := c.Logger()
			if (err == nil) != tt.ok {
				t.Fatalf("Logger() error = %v", err)
			}
			if l != nil {
				_ = l.Sync()
			}
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
