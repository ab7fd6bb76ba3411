package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/screenforge/cmd/screenforge/wizard/components"
	"github.com/mrsinham/screenforge/cmd/screenforge/wizard/types"
	"github.com/mrsinham/screenforge/internal/util"
)

// SummaryAction represents the action selected on the summary screen
type SummaryAction int

const (
	// SummaryActionBack returns to the record screen
	SummaryActionBack SummaryAction = iota
	// SummaryActionGenerate saves the document
	SummaryActionGenerate
	// SummaryActionSaveConfig saves the record to a YAML file
	SummaryActionSaveConfig
	// SummaryActionCancel exits the wizard
	SummaryActionCancel
)

const (
	actionBack       = "back"
	actionGenerate   = "generate"
	actionSaveConfig = "save_config"
	actionCancel     = "cancel"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63")).
				Bold(true).
				MarginBottom(1)

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)

	summaryMissingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")).
				Italic(true)
)

// SummaryScreen shows the record and the rendered note before saving
type SummaryScreen struct {
	form      *huh.Form
	state     *types.WizardState
	preview   string
	action    string
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewSummaryScreen creates a new summary screen. preview is the rendered note.
func NewSummaryScreen(state *types.WizardState, preview string) *SummaryScreen {
	s := &SummaryScreen{
		state:   state,
		preview: preview,
		action:  actionGenerate,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("Select an action").
				Options(
					huh.NewOption("Generate Word document", actionGenerate),
					huh.NewOption("Save record to YAML", actionSaveConfig),
					huh.NewOption("Back to edit", actionBack),
					huh.NewOption("Cancel and exit", actionCancel),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			// Esc goes back instead of cancelling
			s.action = actionBack
			s.done = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("SUMMARY - Review Record")

	left := components.PanelStyle.Width(45).Render(s.buildFieldSummary())
	right := components.PanelStyle.Width(80).Render(
		summaryTitleStyle.Render("Preview") + "\n\n" + strings.TrimSpace(s.preview),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right),
		"",
		s.form.View(),
		"",
		"Enter: Select action | Esc: Back",
	)
}

// buildFieldSummary lists every field, flagging empty ones
func (s *SummaryScreen) buildFieldSummary() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Record"))
	sb.WriteString("\n\n")
	sb.WriteString(summaryLabelStyle.Render("Template: "))
	sb.WriteString(summaryValueStyle.Render(s.state.Variant))
	sb.WriteString("\n")

	for _, info := range util.Fields() {
		sb.WriteString(summaryLabelStyle.Render(info.Label + ": "))
		if v := s.state.Record.Get(info.Key); v != "" {
			sb.WriteString(summaryValueStyle.Render(v))
		} else {
			sb.WriteString(summaryMissingStyle.Render("(empty)"))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Done returns true if an action was chosen
func (s *SummaryScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool { return s.cancelled }

// Action returns the selected action
func (s *SummaryScreen) Action() SummaryAction {
	switch s.action {
	case actionBack:
		return SummaryActionBack
	case actionSaveConfig:
		return SummaryActionSaveConfig
	case actionCancel:
		return SummaryActionCancel
	default:
		return SummaryActionGenerate
	}
}
