package help

import "github.com/mrsinham/screenforge/internal/util"

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"variant": {
		Title:       "TEMPLATE",
		Description: "Which visit note to produce.",
		Details: `screening   - Visit 1, first screening
rescreening - repeated screening, same protocol`,
	},
	util.FieldFullName: {
		Title:       "PATIENT NAME",
		Description: "Full name as it should appear on the note.",
		Details:     "Free text. Cyrillic and Latin script are both accepted.",
	},
	util.FieldDateOfBirth: {
		Title:       "DATE OF BIRTH",
		Description: "Patient date of birth.",
		Details:     "Usually dd.mm.yyyy (e.g., 14.03.1966). Written exactly as typed.",
	},
	util.FieldDoctor: {
		Title:       "DOCTOR",
		Description: "Investigator who dictated the visit.",
		Details:     "Example: Д-р Мария Георгиева",
	},
	util.FieldCoordinator: {
		Title:       "COORDINATOR",
		Description: "Study coordinator who prepared the note.",
		Details:     "Example: Гергана Тодорова",
	},
	util.FieldScreeningTime: {
		Title:       "SCREENING TIME",
		Description: "Time at which the patient was screened.",
		Details:     "Format: HH:MM (e.g., 09:30)",
	},
	util.FieldAge: {
		Title:       "AGE",
		Description: "Age in years at the visit.",
		Details:     "Printed before \"г.\" in the note.",
	},
	util.FieldPatientID: {
		Title:       "PATIENT ID",
		Description: "Identifier assigned at screening.",
		Details: `Required. Names the output file: скрининг_<ID>.docx
Appears twice in the note: in the header and in the narrative.`,
	},
}
