package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/unbound-force/holes/internal/report"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	holeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// countModel is the Bubble Tea model for browsing count results.
type countModel struct {
	entries  []report.Entry
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newCountModel(entries []report.Entry) countModel {
	h := help.New()
	content := renderCountContent(entries)
	return countModel{
		entries: entries,
		help:    h,
		keys:    defaultKeyMap,
		content: content,
	}
}

func renderCountContent(entries []report.Entry) string {
	var sb strings.Builder

	sum := report.Summarize(entries)
	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("Holes: %d input(s), %d failed, %d hole(s)",
			sum.Inputs, sum.Failed, sum.TotalHoles)))
	sb.WriteString("\n\n")

	if len(entries) == 0 {
		sb.WriteString(statusStyle.Render("    No inputs."))
		sb.WriteString("\n")
		return sb.String()
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		source := e.Source
		if e.Line > 0 {
			source = fmt.Sprintf("%s:%d", e.Source, e.Line)
		}
		input := e.Input
		if len(input) > 40 {
			input = input[:37] + "..."
		}
		if e.Failed() {
			rows = append(rows, []string{source, input, "-", "error"})
			continue
		}
		rows = append(rows, []string{source, input, e.Result.Digits, fmt.Sprint(e.Result.Holes)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tuiBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tuiHeaderStyle
			}
			if col == 3 && row >= 0 && row < len(entries) {
				if entries[row].Failed() {
					return failStyle
				}
				if entries[row].Result.Holes > 0 {
					return holeStyle
				}
			}
			return lipgloss.NewStyle()
		}).
		Headers("SOURCE", "INPUT", "DIGITS", "HOLES").
		Rows(rows...)

	sb.WriteString(t.String())
	sb.WriteString("\n")

	for _, e := range entries {
		if e.Failed() {
			sb.WriteString(failStyle.Render("    " + e.Error))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (m countModel) Init() tea.Cmd {
	return nil
}

func (m countModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 2
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m countModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveCount launches the Bubble Tea TUI for browsing
// count results.
func runInteractiveCount(entries []report.Entry) error {
	model := newCountModel(entries)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
