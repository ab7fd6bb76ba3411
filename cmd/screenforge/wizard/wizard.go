package wizard

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/screenforge/cmd/screenforge/wizard/components"
	"github.com/mrsinham/screenforge/cmd/screenforge/wizard/screens"
	"github.com/mrsinham/screenforge/internal/screening"
)

// Generator renders and saves records on behalf of the wizard.
type Generator interface {
	// Preview returns the note text for rec.
	Preview(variant string, rec screening.Record) (string, error)
	// Save writes the note for rec and returns the document path.
	Save(variant string, rec screening.Record) (string, error)
}

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseRecord Phase = iota
	PhaseSummary
	PhaseSaveConfig
	PhaseSaving
	PhaseResult
	PhaseError
)

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	state *WizardState
	gen   Generator

	phase Phase

	recordScreen  *screens.RecordScreen
	summaryScreen *screens.SummaryScreen
	resultScreen  *screens.ResultScreen
	errorScreen   *screens.ErrorScreen

	saveConfigForm *huh.Form
	configPath     string
	notice         string

	width  int
	height int

	cancelled bool
	finished  bool
	err       error
}

// NewWizard creates a new wizard with empty or loaded state.
func NewWizard(state *WizardState, gen Generator) *Wizard {
	if state == nil {
		state = &WizardState{Variant: screening.VariantScreening}
	}

	w := &Wizard{
		state:      state,
		gen:        gen,
		phase:      PhaseRecord,
		configPath: "screening-record.yaml",
	}
	w.recordScreen = screens.NewRecordScreen(w.state)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.recordScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseRecord:
		return w.updateRecord(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseSaveConfig:
		return w.updateSaveConfig(msg)
	case PhaseSaving:
		return w.updateSaving(msg)
	case PhaseResult:
		return w.updateResult(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseRecord:
		return w.recordScreen.View()
	case PhaseSummary:
		if w.notice != "" {
			return lipgloss.JoinVertical(lipgloss.Left, w.summaryScreen.View(), "", w.notice)
		}
		return w.summaryScreen.View()
	case PhaseSaveConfig:
		return w.viewSaveConfig()
	case PhaseSaving:
		return components.TitleStyle.Render("Saving document...")
	case PhaseResult:
		return w.resultScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// transitionToRecord shows the record form again, keeping entered values.
func (w *Wizard) transitionToRecord() (tea.Model, tea.Cmd) {
	w.phase = PhaseRecord
	w.notice = ""
	w.recordScreen = screens.NewRecordScreen(w.state)
	return w, w.recordScreen.Init()
}

// updateRecord handles updates in the record entry phase.
func (w *Wizard) updateRecord(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.recordScreen.Update(msg)
	if rs, ok := model.(*screens.RecordScreen); ok {
		w.recordScreen = rs
	}

	if w.recordScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.recordScreen.Done() {
		return w.transitionToSummary()
	}

	return w, cmd
}

// transitionToSummary renders the preview and moves to the summary screen.
func (w *Wizard) transitionToSummary() (tea.Model, tea.Cmd) {
	preview, err := w.gen.Preview(w.state.Variant, w.state.Record)
	if err != nil {
		return w.fail(err)
	}

	w.phase = PhaseSummary
	w.summaryScreen = screens.NewSummaryScreen(w.state, preview)
	return w, w.summaryScreen.Init()
}

// updateSummary handles updates in the summary phase.
func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryScreen.Done() {
		switch w.summaryScreen.Action() {
		case screens.SummaryActionBack:
			return w.transitionToRecord()
		case screens.SummaryActionGenerate:
			return w.startSave()
		case screens.SummaryActionSaveConfig:
			return w.transitionToSaveConfig()
		case screens.SummaryActionCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

// transitionToSaveConfig shows the save record dialog.
func (w *Wizard) transitionToSaveConfig() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveConfig

	w.saveConfigForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("config_path").
				Title("Save record to").
				Description("Enter the path for the YAML file").
				Value(&w.configPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveConfigForm.Init()
}

// updateSaveConfig handles updates in the save record phase.
func (w *Wizard) updateSaveConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return w.transitionToSummary()
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveConfigForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveConfigForm = f
	}

	if w.saveConfigForm.State == huh.StateCompleted {
		return w.writeConfig()
	}

	return w, cmd
}

// writeConfig saves the record file and returns to the summary.
func (w *Wizard) writeConfig() (tea.Model, tea.Cmd) {
	if err := SaveToYAML(w.state, w.configPath); err != nil {
		return w.fail(err)
	}
	model, cmd := w.transitionToSummary()
	w.notice = components.SubtitleStyle.Render("Record saved to " + w.configPath)
	return model, cmd
}

// viewSaveConfig renders the save record dialog.
func (w *Wizard) viewSaveConfig() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Save Record"),
		"",
		w.saveConfigForm.View(),
		"",
		"Enter: Save | Esc: Back",
	)
}

// startSave writes the document in a bubbletea command.
func (w *Wizard) startSave() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaving
	variant, rec := w.state.Variant, w.state.Record

	return w, func() tea.Msg {
		path, err := w.gen.Save(variant, rec)
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}
		return screens.ResultMsg{Path: path}
	}
}

// updateSaving waits for the save command to report back.
func (w *Wizard) updateSaving(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.ResultMsg:
		w.phase = PhaseResult
		w.resultScreen = screens.NewResultScreen(msg)
		return w, nil

	case screens.ErrorMsg:
		return w.fail(msg.Error)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, nil
}

func (w *Wizard) fail(err error) (tea.Model, tea.Cmd) {
	w.phase = PhaseError
	w.err = err
	w.errorScreen = screens.NewErrorScreen(err)
	return w, nil
}

// updateResult handles updates in the result phase.
func (w *Wizard) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.resultScreen.Update(msg)
	if rs, ok := model.(*screens.ResultScreen); ok {
		w.resultScreen = rs
	}

	if w.resultScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// updateError handles updates in the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}

	if w.errorScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// InitialState returns the state the form opens with: the record loaded from
// fromConfig when given, and defaultVariant unless the file sets one.
func InitialState(fromConfig, defaultVariant string) (*WizardState, error) {
	state := &WizardState{}
	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return nil, fmt.Errorf("resolving record path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return nil, fmt.Errorf("loading record: %w", err)
		}
		state = loaded
	}
	if state.Variant == "" {
		state.Variant = defaultVariant
	}
	return state, nil
}

// Run starts the interactive wizard. If fromConfig is provided, the form is
// pre-filled with the first record of that YAML file. defaultVariant is
// selected when the file names no variant.
func Run(fromConfig, defaultVariant string, gen Generator) error {
	state, err := InitialState(fromConfig, defaultVariant)
	if err != nil {
		return err
	}

	wizard := NewWizard(state, gen)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if w, ok := finalModel.(*Wizard); ok {
		if w.cancelled {
			return nil // User cancelled, not an error
		}
		if w.err != nil {
			return w.err
		}
	}

	return nil
}
