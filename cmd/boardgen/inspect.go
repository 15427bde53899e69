package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/boardgen/backend"
	"github.com/wippyai/boardgen/errors"
	"github.com/wippyai/boardgen/generator"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	backendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <board.toml>",
		Short: "Browse the generated artifacts without writing them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New(errors.PhaseConfig, errors.KindConfiguration).
					Detail("inspect needs an interactive terminal").
					Build()
			}
			results, err := a.generate(cmd, args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(newInspector(args[0], artifacts(results)), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

// artifact is one browsable output.
type artifact struct {
	backend string
	path    string
	body    string
}

// artifacts lists the outputs of results in write order. Modules show their
// outline; the deploy manifest of a backend is a single entry.
func artifacts(results []*backend.Result) []artifact {
	var out []artifact
	for _, res := range results {
		for _, m := range res.Modules {
			out = append(out, artifact{res.Backend, path.Join(m.Dir, m.Name+generator.IRSuffix), m.Outline()})
		}
		for _, d := range res.Descriptors {
			out = append(out, artifact{res.Backend, path.Join(d.Dir, d.Name), d.File.String()})
		}
		for _, t := range res.Texts {
			out = append(out, artifact{res.Backend, path.Join(t.Dir, t.Name), strings.Join(t.Lines, "\n")})
		}
		if len(res.Deploy) > 0 {
			var b strings.Builder
			for _, d := range res.Deploy {
				fmt.Fprintf(&b, "%s -> %s\n", d.Source, d.Dest)
			}
			out = append(out, artifact{res.Backend, "deploy manifest", b.String()})
		}
	}
	return out
}

type inspectorState int

const (
	stateList inspectorState = iota
	stateView
)

type inspectorModel struct {
	filename string
	items    []artifact
	selected int
	state    inspectorState
	viewport viewport.Model
}

func newInspector(filename string, items []artifact) *inspectorModel {
	return &inspectorModel{
		filename: filename,
		items:    items,
		state:    stateList,
		viewport: viewport.New(80, 20),
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		// title, blank line and help
		m.viewport.Height = max(msg.Height-4, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.items)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			if m.state == stateList && len(m.items) > 0 {
				m.viewport.SetContent(m.items[m.selected].body)
				m.viewport.GotoTop()
				m.state = stateView
				return m, nil
			}

		case "esc":
			if m.state == stateView {
				m.state = stateList
				return m, nil
			}
		}
	}

	if m.state == stateView {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Board Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateList:
		if len(m.items) == 0 {
			b.WriteString("No artifacts generated.\n")
		}
		for i, it := range m.items {
			line := fmt.Sprintf("%-8s %s", it.backend, it.path)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + backendStyle.Render(fmt.Sprintf("%-8s", it.backend)) + " " + nameStyle.Render(it.path))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • q quit"))

	case stateView:
		it := m.items[m.selected]
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("%s • %3.f%% • ↑/↓ scroll • esc back • q quit",
			it.path, m.viewport.ScrollPercent()*100)))
	}

	return b.String()
}
