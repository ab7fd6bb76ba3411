package wizard

import (
	"fmt"

	"github.com/mrsinham/screenforge/internal/screening"
)

// LoadFromYAML reads a records file and returns its first record as wizard state.
func LoadFromYAML(path string) (*WizardState, error) {
	f, err := screening.LoadFromYAML(path)
	if err != nil {
		return nil, err
	}
	return FromRecordFile(f), nil
}

// SaveToYAML writes the wizard state as a single-record file.
func SaveToYAML(state *WizardState, path string) error {
	if err := ToRecordFile(state).SaveToYAML(path); err != nil {
		return fmt.Errorf("saving wizard record: %w", err)
	}
	return nil
}
