// Package wizard provides an interactive TUI for filling in a screening record.
package wizard

import "github.com/mrsinham/screenforge/cmd/screenforge/wizard/types"

// WizardState is the record being edited and its template variant.
type WizardState = types.WizardState
