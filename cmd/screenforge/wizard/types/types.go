// Package types holds the wizard state shared by the wizard and its screens.
package types

import "github.com/mrsinham/screenforge/internal/screening"

// WizardState holds everything the user edits in the wizard.
type WizardState struct {
	Variant string
	Record  screening.Record
}
