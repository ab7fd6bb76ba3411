package wizard

import (
	"github.com/mrsinham/screenforge/internal/screening"
)

// ToRecordFile converts the wizard state into a single-record file.
func ToRecordFile(s *WizardState) *screening.RecordFile {
	return &screening.RecordFile{
		Variant: s.Variant,
		Records: []screening.Record{s.Record},
	}
}

// FromRecordFile creates a WizardState from the first record of f.
// An empty file gives an empty record.
func FromRecordFile(f *screening.RecordFile) *WizardState {
	state := &WizardState{Variant: f.Variant}
	if len(f.Records) > 0 {
		state.Record = f.Records[0]
	}
	return state
}
