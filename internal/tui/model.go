package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrtuuro/java-switcher/internal/jdk"
	"github.com/mrtuuro/java-switcher/internal/switcher"
)

type Service interface {
	Candidates() ([]jdk.Candidate, error)
	Apply(jdk.Candidate) (switcher.ApplyResult, error)
	Current() (string, error)
}

type model struct {
	svc Service

	defaultName string
	candidates  []jdk.Candidate
	cursor      int
	activeHome  string

	busy      bool
	status    string
	lastError string
	spinner   spinner.Model
}

type candidatesMsg struct {
	candidates []jdk.Candidate
	err        error
}

type currentMsg struct {
	home string
	err  error
}

type applyDoneMsg struct {
	candidate jdk.Candidate
	result    switcher.ApplyResult
	err       error
}

// Run blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, svc Service, defaultName string) error {
	m := newModel(svc, defaultName)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func newModel(svc Service, defaultName string) model {
	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	return model{
		svc:         svc,
		defaultName: defaultName,
		status:      "Loading installed versions...",
		busy:        true,
		spinner:     spin,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadCandidatesCmd(),
		m.loadCurrentCmd(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	case candidatesMsg:
		m.busy = false
		if typed.err != nil {
			m.lastError = typed.err.Error()
			m.status = "Failed to load versions"
			return m, tea.Batch(cmds...)
		}
		m.candidates = typed.candidates
		if m.cursor >= len(m.candidates) {
			m.cursor = len(m.candidates) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.lastError = ""
		m.status = fmt.Sprintf("Loaded %d installed versions", len(m.candidates))
	case currentMsg:
		if typed.err != nil {
			m.lastError = typed.err.Error()
			return m, tea.Batch(cmds...)
		}
		m.activeHome = typed.home
	case applyDoneMsg:
		m.busy = false
		if typed.err != nil {
			m.lastError = typed.err.Error()
			if typed.result.Switch.HomeSet && !typed.result.Switch.PathSet {
				m.status = fmt.Sprintf("Partial switch: %s changed but the search path was not; rerun to finish", switcher.HomeVariable)
			} else {
				m.status = "Switch failed"
			}
			return m, tea.Batch(cmds...)
		}

		m.lastError = ""
		m.status = fmt.Sprintf("%s set to %s; open a new terminal to pick it up", switcher.HomeVariable, typed.candidate.Path)
		if typed.result.LogWarning != nil {
			m.lastError = "Audit log warning: " + typed.result.LogWarning.Error()
		}
		cmds = append(cmds, m.loadCurrentCmd())
	}

	return m, tea.Batch(cmds...)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	if m.busy {
		return m, nil
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.candidates)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		if len(m.candidates) > 0 {
			m.cursor = len(m.candidates) - 1
		}
	case "r":
		m.busy = true
		m.status = "Refreshing..."
		return m, tea.Batch(m.spinner.Tick, m.loadCandidatesCmd(), m.loadCurrentCmd())
	case "enter":
		if len(m.candidates) == 0 {
			m.status = "No version selected"
			return m, nil
		}
		return m.startApply(m.candidates[m.cursor])
	}

	return m, nil
}

func (m model) loadCandidatesCmd() tea.Cmd {
	return func() tea.Msg {
		candidates, err := m.svc.Candidates()
		return candidatesMsg{candidates: candidates, err: err}
	}
}

func (m model) loadCurrentCmd() tea.Cmd {
	return func() tea.Msg {
		home, err := m.svc.Current()
		return currentMsg{home: home, err: err}
	}
}

func (m model) startApply(candidate jdk.Candidate) (tea.Model, tea.Cmd) {
	m.busy = true
	m.lastError = ""
	m.status = fmt.Sprintf("Switching to %s...", candidate.Name)

	applyCmd := func() tea.Msg {
		result, err := m.svc.Apply(candidate)
		return applyDoneMsg{candidate: candidate, result: result, err: err}
	}

	return m, tea.Batch(m.spinner.Tick, applyCmd)
}

func (m model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	header := titleStyle.Render("JDK Switcher")
	header += "\n"
	header += subtleStyle.Render("Enter: switch  r: refresh  q: quit")

	active := "none"
	if m.activeHome != "" {
		active = m.activeHome
	}
	meta := fmt.Sprintf("Active %s: %s", switcher.HomeVariable, active)

	rows := make([]string, 0, len(m.candidates))
	for i, candidate := range m.candidates {
		prefix := "  "
		isCursor := i == m.cursor
		if isCursor {
			prefix = "> "
		}

		line := prefix + candidate.Name
		if candidate.Name == m.defaultName {
			line += " (default)"
		}

		isActive := m.activeHome != "" && candidate.Path == m.activeHome
		if isActive {
			line += "  [active]"
		}

		switch {
		case isActive:
			line = activeStyle.Render(line)
		case isCursor:
			line = cursorStyle.Render(line)
		}

		rows = append(rows, line)
	}
	if len(rows) == 0 {
		rows = append(rows, subtleStyle.Render("<no installed versions>"))
	}

	body := ""
	for i, row := range rows {
		if i > 0 {
			body += "\n"
		}
		body += row
	}

	status := subtleStyle.Render(m.status)
	if m.busy {
		status = fmt.Sprintf("%s %s", m.spinner.View(), subtleStyle.Render(m.status))
	}

	footer := status
	if m.lastError != "" {
		footer += "\n" + errorStyle.Render(m.lastError)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s", header, meta, body, footer)
}
