package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/screenforge/cmd/screenforge/wizard/components"
	"github.com/mrsinham/screenforge/cmd/screenforge/wizard/types"
	"github.com/mrsinham/screenforge/internal/screening"
	"github.com/mrsinham/screenforge/internal/util"
	"github.com/samber/lo"
)

// RecordScreen collects the seven record fields and the template variant
type RecordScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	state     *types.WizardState
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewRecordScreen creates the record entry screen bound to state
func NewRecordScreen(state *types.WizardState) *RecordScreen {
	if state.Variant == "" {
		state.Variant = screening.VariantScreening
	}

	s := &RecordScreen{
		helpPanel: components.NewHelpPanel(),
		state:     state,
	}

	variantOptions := lo.Map(screening.Variants(), func(v string, _ int) huh.Option[string] {
		return huh.NewOption(v, v)
	})

	fields := []huh.Field{
		huh.NewSelect[string]().
			Key("variant").
			Title("Template").
			Options(variantOptions...).
			Value(&state.Variant),
	}
	for _, info := range util.Fields() {
		input := huh.NewInput().
			Key(info.Key).
			Title(info.Label).
			Value(state.Record.FieldPtr(info.Key))
		if info.Key == util.FieldPatientID {
			input = input.Validate(validatePatientID)
		}
		fields = append(fields, input)
	}

	s.form = huh.NewForm(huh.NewGroup(fields...)).
		WithShowHelp(false).
		WithShowErrors(true)

	return s
}

func validatePatientID(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("patient ID is required")
	}
	return nil
}

// Init implements tea.Model
func (s *RecordScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *RecordScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/3, msg.Height/2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		key := focused.GetKey()
		s.helpPanel.SetField(key, s.state.Record.Get(key))
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *RecordScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("SCREENING RECORD")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Submit | Esc: Cancel",
	)
}

// Done returns true if the form was completed
func (s *RecordScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *RecordScreen) Cancelled() bool { return s.cancelled }
