// Package edgecases perturbs generated sample records with values that
// commonly break document naming and layout.
package edgecases

import "math/rand/v2"

// Applicator applies edge cases to generated values
type Applicator struct {
	config Config
	rng    *rand.Rand
}

// NewApplicator creates a new edge case applicator
func NewApplicator(config Config, rng *rand.Rand) *Applicator {
	return &Applicator{config: config, rng: rng}
}

// ShouldApply returns true if edge cases should apply to this record
func (a *Applicator) ShouldApply() bool {
	return a.config.IsEnabled() && a.rng.IntN(100) < a.config.Percentage
}

// SelectEdgeCaseType randomly selects which edge case type to apply
func (a *Applicator) SelectEdgeCaseType() EdgeCaseType {
	return a.config.Types[a.rng.IntN(len(a.config.Types))]
}

// ApplyToPatientName applies edge cases to a patient name
func (a *Applicator) ApplyToPatientName(sex, original string) string {
	switch a.SelectEdgeCaseType() {
	case SpecialChars:
		return GenerateSpecialCharName(sex, a.rng)
	case LongNames:
		return GenerateLongName(sex, a.rng)
	default:
		return original
	}
}

// ApplyToPatientID applies edge cases to a patient ID
func (a *Applicator) ApplyToPatientID(original string) string {
	switch a.SelectEdgeCaseType() {
	case VariedIDs:
		return GenerateRandomVariedPatientID(a.rng)
	case LongNames:
		return GenerateLongPatientID(a.rng)
	default:
		return original
	}
}

// ApplyToBirthDate applies edge cases to a date of birth
func (a *Applicator) ApplyToBirthDate(original string) string {
	if a.SelectEdgeCaseType() == PartialDates {
		return GeneratePartialDate(original, a.rng)
	}
	return original
}

// FieldsToOmit returns the fields to leave empty for this record
func (a *Applicator) FieldsToOmit() []string {
	if !a.config.HasType(MissingFields) {
		return nil
	}
	return SelectFieldsToOmit(a.rng, 1+a.rng.IntN(3))
}
