package screens

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mrsinham/screenforge/cmd/screenforge/wizard/types"
	"github.com/mrsinham/screenforge/internal/screening"
)

func TestNewRecordScreen_DefaultVariant(t *testing.T) {
	state := &types.WizardState{}
	s := NewRecordScreen(state)
	if state.Variant != screening.VariantScreening {
		t.Errorf("default variant = %q, want %q", state.Variant, screening.VariantScreening)
	}
	if s.Done() || s.Cancelled() {
		t.Error("new screen should be neither done nor cancelled")
	}
}

func TestRecordScreen_Escape(t *testing.T) {
	s := NewRecordScreen(&types.WizardState{})
	s.Init()
	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !s.Cancelled() {
		t.Error("esc should cancel the record screen")
	}
	if s.View() != "Cancelled.\n" {
		t.Errorf("unexpected view after cancel: %q", s.View())
	}
}

func TestValidatePatientID(t *testing.T) {
	if err := validatePatientID("  "); err == nil {
		t.Error("blank ID should be rejected")
	}
	if err := validatePatientID("123"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSummaryScreen_View(t *testing.T) {
	state := &types.WizardState{
		Variant: screening.VariantRescreening,
		Record:  screening.Record{FullName: "Иван Петров", PatientID: "1234567890"},
	}
	s := NewSummaryScreen(state, "ПРОТОКОЛ №: mRNA-1010-P304")
	view := s.View()

	for _, want := range []string{"Иван Петров", "1234567890", "rescreening", "(empty)", "mRNA-1010-P304"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}
	if s.Action() != SummaryActionGenerate {
		t.Errorf("default action = %v, want generate", s.Action())
	}
}

func TestSummaryScreen_EscapeGoesBack(t *testing.T) {
	s := NewSummaryScreen(&types.WizardState{}, "")
	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !s.Done() || s.Action() != SummaryActionBack {
		t.Errorf("esc should choose back, got done=%v action=%v", s.Done(), s.Action())
	}
}

func TestResultAndErrorScreens(t *testing.T) {
	r := NewResultScreen(ResultMsg{Path: "/tmp/скрининг_1.docx"})
	if !strings.Contains(r.View(), "/tmp/скрининг_1.docx") {
		t.Error("result view should show the path")
	}
	r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !r.Done() {
		t.Error("enter should finish the result screen")
	}

	e := NewErrorScreen(errors.New("disk full"))
	if !strings.Contains(e.View(), "disk full") {
		t.Error("error view should show the message")
	}
	e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !e.Done() {
		t.Error("q should finish the error screen")
	}
}
