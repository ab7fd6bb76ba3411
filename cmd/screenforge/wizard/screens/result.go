package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/screenforge/cmd/screenforge/wizard/components"
)

// ResultMsg is sent when the document has been saved
type ResultMsg struct {
	Path string
}

// ErrorMsg is sent when saving failed
type ErrorMsg struct {
	Error error
}

var (
	resultSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	resultLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	resultValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)

	resultCommandStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("252")).
				Padding(0, 1)

	resultHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	errorTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))
)

// ResultScreen shows where the document was written
type ResultScreen struct {
	path   string
	done   bool
	width  int
	height int
}

// NewResultScreen creates a result screen for the saved path
func NewResultScreen(msg ResultMsg) *ResultScreen {
	return &ResultScreen{path: msg.Path}
}

// Init implements tea.Model
func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ResultScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *ResultScreen) View() string {
	var sb strings.Builder

	sb.WriteString(resultSuccessStyle.Render("✓ Document saved"))
	sb.WriteString("\n\n")
	sb.WriteString("  ")
	sb.WriteString(resultLabelStyle.Render("File: "))
	sb.WriteString(resultValueStyle.Render(s.path))
	sb.WriteString("\n\n")

	sb.WriteString(components.TitleStyle.Render("Next steps:"))
	sb.WriteString("\n")
	sb.WriteString("  • Check the text: ")
	sb.WriteString(resultCommandStyle.Render("screenforge preview " + s.path))
	sb.WriteString("\n\n")
	sb.WriteString(resultHintStyle.Render("Press Enter or q to exit"))

	return sb.String()
}

// Done returns true if the user is finished
func (s *ResultScreen) Done() bool { return s.done }

// Path returns the saved document path
func (s *ResultScreen) Path() string { return s.path }

// ErrorScreen displays an error that occurred while saving
type ErrorScreen struct {
	err    error
	done   bool
	width  int
	height int
}

// NewErrorScreen creates a new error screen
func NewErrorScreen(err error) *ErrorScreen {
	return &ErrorScreen{err: err}
}

// Init implements tea.Model
func (s *ErrorScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *ErrorScreen) View() string {
	var sb strings.Builder

	sb.WriteString(errorTitleStyle.Render("✗ Saving failed"))
	sb.WriteString("\n\n")
	sb.WriteString(components.TitleStyle.Render("Error:"))
	sb.WriteString("\n  ")
	sb.WriteString(errorMessageStyle.Render(s.err.Error()))
	sb.WriteString("\n\n")
	sb.WriteString(resultHintStyle.Render("Press Enter or q to exit"))

	return sb.String()
}

// Done returns true if the user is finished
func (s *ErrorScreen) Done() bool { return s.done }

// Error returns the error
func (s *ErrorScreen) Error() error { return s.err }
