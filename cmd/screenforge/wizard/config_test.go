package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mrsinham/screenforge/internal/screening"
)

func TestLoadFromYAML_FirstRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	content := `
variant: rescreening
records:
  - full_name: "Мария Петрова"
    date_of_birth: "02.05.1971"
    doctor: "Д-р Елена Димитрова"
    coordinator: "Ралица Попова"
    screening_time: "10:15"
    age: "53"
    patient_id: "9876543210"
  - full_name: "Second"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test record: %v", err)
	}

	state, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	if state.Variant != screening.VariantRescreening {
		t.Errorf("Expected variant rescreening, got %s", state.Variant)
	}
	if state.Record.FullName != "Мария Петрова" {
		t.Errorf("Expected first record, got %s", state.Record.FullName)
	}
	if state.Record.ScreeningTime != "10:15" {
		t.Errorf("Expected screening time 10:15, got %s", state.Record.ScreeningTime)
	}
	if state.Record.PatientID != "9876543210" {
		t.Errorf("Expected patient ID 9876543210, got %s", state.Record.PatientID)
	}
}

func TestLoadFromYAML_EmptyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("records: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	state, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	if !state.Record.IsEmpty() {
		t.Errorf("Expected empty record, got %+v", state.Record)
	}
}

func TestLoadFromYAML_MissingFile(t *testing.T) {
	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSaveToYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := &WizardState{
		Variant: screening.VariantScreening,
		Record:  screening.Record{FullName: "A", Age: "40", PatientID: "0042"},
	}

	if err := SaveToYAML(want, path); err != nil {
		t.Fatalf("SaveToYAML failed: %v", err)
	}
	got, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestRecordFileConversion(t *testing.T) {
	state := &WizardState{Variant: "screening", Record: screening.Record{PatientID: "1"}}
	f := ToRecordFile(state)
	if len(f.Records) != 1 || f.Variant != "screening" {
		t.Fatalf("unexpected file %+v", f)
	}
	if back := FromRecordFile(f); *back != *state {
		t.Errorf("FromRecordFile(ToRecordFile(s)) = %+v, want %+v", back, state)
	}
}

func TestInitialState_DefaultVariant(t *testing.T) {
	state, err := InitialState("", screening.VariantRescreening)
	if err != nil {
		t.Fatalf("InitialState failed: %v", err)
	}
	if state.Variant != screening.VariantRescreening {
		t.Errorf("Expected configured variant rescreening, got %q", state.Variant)
	}

	w := NewWizard(state, nil)
	if w.state.Variant != screening.VariantRescreening {
		t.Errorf("Record screen replaced configured variant with %q", w.state.Variant)
	}
}

func TestInitialState_FileVariantWins(t *testing.T) {
	dir := t.TempDir()
	withVariant := filepath.Join(dir, "with.yaml")
	if err := os.WriteFile(withVariant, []byte("variant: screening\nrecords:\n  - patient_id: \"1\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	without := filepath.Join(dir, "without.yaml")
	if err := os.WriteFile(without, []byte("records:\n  - patient_id: \"2\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	state, err := InitialState(withVariant, screening.VariantRescreening)
	if err != nil {
		t.Fatalf("InitialState failed: %v", err)
	}
	if state.Variant != screening.VariantScreening || state.Record.PatientID != "1" {
		t.Errorf("Expected file variant and record, got %+v", state)
	}

	state, err = InitialState(without, screening.VariantRescreening)
	if err != nil {
		t.Fatalf("InitialState failed: %v", err)
	}
	if state.Variant != screening.VariantRescreening || state.Record.PatientID != "2" {
		t.Errorf("Expected configured variant with file record, got %+v", state)
	}

	if _, err := InitialState(filepath.Join(dir, "nope.yaml"), ""); err == nil {
		t.Error("Expected error for missing file")
	}
}
