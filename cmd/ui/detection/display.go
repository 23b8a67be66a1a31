package detection

import (
	"fmt"
	"strings"

	"frameworkicons/pkg/detector"
	"frameworkicons/pkg/framework"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	warningStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	resultBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#01FAC6")).
			Padding(1, 2).
			Width(60)
)

type model struct {
	result    detector.Result
	confirmed bool
	quitting  bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "y", "Y", "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case "n", "N", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(Render(m.result))
	s.WriteString("\n\n")

	s.WriteString(focusedStyle.Render("Apply this icon theme to the workspace?"))
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press "))
	s.WriteString(focusedStyle.Render("y"))
	s.WriteString(helpStyle.Render(" to apply, "))
	s.WriteString(focusedStyle.Render("n"))
	s.WriteString(helpStyle.Render(" to skip, or "))
	s.WriteString(focusedStyle.Render("q"))
	s.WriteString(helpStyle.Render(" to quit"))

	return s.String()
}

// Render formats a detection result as a titled box.
func Render(result detector.Result) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Framework Detection Results"))
	s.WriteString("\n\n")

	var content strings.Builder
	content.WriteString(focusedStyle.Render("Framework: "))
	content.WriteString(selectedItemStyle.Render(string(result.Framework)))
	content.WriteString("\n")

	content.WriteString(focusedStyle.Render("Icon theme: "))
	content.WriteString(selectedItemStyle.Render(result.ThemeID))
	content.WriteString("\n")

	if result.PackageManager != "" {
		content.WriteString(focusedStyle.Render("Package manager: "))
		content.WriteString(selectedItemStyle.Render(result.PackageManager))
		content.WriteString("\n")
	}

	if len(result.Signals) > 0 {
		content.WriteString("\n")
		content.WriteString(focusedStyle.Render("Detection signals:"))
		content.WriteString("\n")
		for _, signal := range result.Signals {
			content.WriteString(successStyle.Render("  ✓ "))
			content.WriteString(descriptionStyle.Render(signal))
			content.WriteString("\n")
		}
	} else if result.Framework == framework.Unknown {
		content.WriteString("\n")
		content.WriteString(helpStyle.Render("No framework markers found, the default theme applies."))
		content.WriteString("\n")
	}

	if result.ManifestError != "" {
		content.WriteString("\n")
		content.WriteString(warningStyle.Render("  ! "))
		content.WriteString(descriptionStyle.Render(fmt.Sprintf("package.json ignored: %s", result.ManifestError)))
		content.WriteString("\n")
	}

	s.WriteString(resultBox.Render(content.String()))
	return s.String()
}

// ShowDetectionResults displays the result and asks whether to apply the
// matching icon theme.
func ShowDetectionResults(result detector.Result) (bool, error) {
	m := model{
		result: result,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error showing detection results: %w", err)
	}

	final := finalModel.(model)
	return final.confirmed, nil
}
