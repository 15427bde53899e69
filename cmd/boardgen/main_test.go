package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/boardgen/backend/client"
	"github.com/wippyai/boardgen/board"
	"github.com/wippyai/boardgen/errors"
	"github.com/wippyai/boardgen/generator"
)

const boardTOML = `
[medium]
kind = "uart"

[[gpio]]
name      = "buttons"
direction = "in"

[[core]]
name = "adder"
[[core.port]]
name      = "a"
direction = "in"
[[core.port]]
name      = "sum"
direction = "out"

[[instance]]
name = "adder0"
core = "adder"
[[instance.bind]]
port = "a"
cpu  = true
[[instance.bind]]
port = "sum"
cpu  = true
`

func writeBoard(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "board.toml")
	if err := os.WriteFile(path, []byte(boardTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestGenerateCommand(t *testing.T) {
	path := writeBoard(t)
	out := filepath.Join(filepath.Dir(path), "out")

	if err := execute("generate", path, "--backend", client.Name, "-o", out); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(out, "client", "src", "api", "components"+generator.IRSuffix))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "new uart()") {
		t.Errorf("medium missing from components:\n%s", data)
	}
}

func TestGenerateCommand_DryRun(t *testing.T) {
	path := writeBoard(t)
	out := filepath.Join(filepath.Dir(path), "out")

	if err := execute("generate", path, "--backend", client.Name, "-o", out, "--dry-run"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("dry run wrote output")
	}
}

func TestGenerateCommand_Failures(t *testing.T) {
	path := writeBoard(t)
	tests := []struct {
		name string
		args []string
		kind errors.Kind
	}{
		{"unknown backend", []string{"generate", path, "--backend", "verilog"}, errors.KindConfiguration},
		{"bad log level", []string{"generate", path, "--log-level", "loud"}, errors.KindConfiguration},
		{"missing board", []string{"generate", path + ".absent", "--backend", client.Name}, errors.KindIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(tt.args...)
			if kind, _ := errors.KindOf(err); kind != tt.kind {
				t.Errorf("err = %v, want %s", err, tt.kind)
			}
		})
	}
}

func TestErrorTag(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{errors.InvalidInput(errors.PhaseLoad, nil, "bad"), "Invalid Input Error"},
		{errors.UnknownDevice("lamp"), "Configuration Error"},
		{os.ErrNotExist, "Error"},
	}
	for _, tt := range tests {
		if got := errorTag(tt.err); got != tt.want {
			t.Errorf("errorTag(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func sampleArtifacts(t *testing.T) []artifact {
	t.Helper()
	b := &board.Board{
		Medium:    &board.UART{},
		Scheduler: board.Scheduler{Code: &board.DefaultCode{}},
	}
	results, err := generator.Generate(context.Background(), b, client.New(client.Options{}))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return artifacts(results)
}

func TestArtifacts(t *testing.T) {
	items := sampleArtifacts(t)
	if len(items) == 0 {
		t.Fatal("no artifacts")
	}
	for _, it := range items {
		if it.backend != client.Name {
			t.Errorf("%s from %s", it.path, it.backend)
		}
		if !strings.HasSuffix(it.path, generator.IRSuffix) {
			t.Errorf("unexpected client artifact %s", it.path)
		}
		if it.body == "" {
			t.Errorf("%s has no outline", it.path)
		}
	}
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestInspector(t *testing.T) {
	m := newInspector("board.toml", sampleArtifacts(t))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(key(tea.KeyDown))
	if m.selected != 1 {
		t.Errorf("selected = %d after down", m.selected)
	}
	m.Update(key(tea.KeyUp))
	m.Update(key(tea.KeyUp))
	if m.selected != 0 {
		t.Errorf("selected = %d after up past the top", m.selected)
	}

	m.Update(key(tea.KeyEnter))
	if m.state != stateView {
		t.Fatal("enter did not open the artifact")
	}
	if !strings.Contains(m.View(), m.items[0].path) {
		t.Error("view lacks the artifact path")
	}

	m.Update(key(tea.KeyEsc))
	if m.state != stateList {
		t.Error("esc did not return to the list")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
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
