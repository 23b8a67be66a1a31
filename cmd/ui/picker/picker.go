package picker

import (
	"context"
	"fmt"

	"frameworkicons/pkg/host"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	titleStyle            = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	selectedItemStyle     = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	selectedItemDescStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170"))
	descriptionStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
)

type model struct {
	cursor   int
	items    []host.PickItem
	header   string
	chosen   int
	canceled bool
}

func initialModel(items []host.PickItem, header string, cursor int) model {
	if cursor < 0 || cursor >= len(items) {
		cursor = 0
	}
	return model{
		cursor: cursor,
		items:  items,
		header: titleStyle.Render(header),
		chosen: -1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.canceled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter", " ":
			if len(m.items) > 0 {
				m.chosen = m.cursor
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	s := m.header + "\n\n"

	for i, item := range m.items {
		cursor := " "
		checked := " "
		title := item.Label
		desc := item.Description
		if m.cursor == i {
			cursor = focusedStyle.Render(">")
			checked = focusedStyle.Render("X")
			title = selectedItemStyle.Render(title)
			desc = selectedItemDescStyle.Render(desc)
		}

		s += fmt.Sprintf("%s [%s] %s\n", cursor, checked, focusedStyle.Render(title))
		if item.Description != "" {
			s += descriptionStyle.Render(desc) + "\n"
		}
		s += "\n"
	}

	s += fmt.Sprintf("Press %s to confirm choice, %s to exit.\n\n",
		focusedStyle.Render("enter"), focusedStyle.Render("esc/q"))
	return s
}

// result returns the chosen item; ok is false when the list was dismissed.
func (m model) result() (host.PickItem, bool) {
	if m.canceled || m.chosen < 0 {
		return host.PickItem{}, false
	}
	return m.items[m.chosen], true
}

// Run shows items and returns the selected one. The cursor starts on the
// item whose Value equals current.
func Run(ctx context.Context, items []host.PickItem, header, current string) (host.PickItem, bool, error) {
	cursor := 0
	for i, item := range items {
		if item.Value == current {
			cursor = i
			break
		}
	}

	p := tea.NewProgram(initialModel(items, header, cursor), tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return host.PickItem{}, false, fmt.Errorf("error running picker: %w", err)
	}

	item, ok := finalModel.(model).result()
	return item, ok, nil
}
