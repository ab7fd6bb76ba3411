// Package screening holds the screening record and renders it into the
// narrative visit template.
package screening

import (
	"github.com/mrsinham/screenforge/internal/util"
	"github.com/samber/lo"
)

// Record is the data captured for one patient screening event.
// Every field is free text; nothing is validated or coerced.
type Record struct {
	FullName        string `yaml:"full_name"`
	DateOfBirth     string `yaml:"date_of_birth"`
	DoctorName      string `yaml:"doctor"`
	CoordinatorName string `yaml:"coordinator"`
	ScreeningTime   string `yaml:"screening_time"`
	Age             string `yaml:"age"`
	PatientID       string `yaml:"patient_id"`
}

// Fields returns the record keyed by canonical field key.
func (r Record) Fields() map[string]string {
	return map[string]string{
		util.FieldFullName:      r.FullName,
		util.FieldDateOfBirth:   r.DateOfBirth,
		util.FieldDoctor:        r.DoctorName,
		util.FieldCoordinator:   r.CoordinatorName,
		util.FieldScreeningTime: r.ScreeningTime,
		util.FieldAge:           r.Age,
		util.FieldPatientID:     r.PatientID,
	}
}

// Get returns the value of the field with the given canonical key.
func (r Record) Get(key string) string {
	return r.Fields()[key]
}

// Set assigns a field by canonical key. Unknown keys are ignored and reported as false.
func (r *Record) Set(key, value string) bool {
	p := r.FieldPtr(key)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// FieldPtr returns a pointer to the field with the given canonical key, or
// nil for an unknown key. Forms bind their inputs through it.
func (r *Record) FieldPtr(key string) *string {
	switch key {
	case util.FieldFullName:
		return &r.FullName
	case util.FieldDateOfBirth:
		return &r.DateOfBirth
	case util.FieldDoctor:
		return &r.DoctorName
	case util.FieldCoordinator:
		return &r.CoordinatorName
	case util.FieldScreeningTime:
		return &r.ScreeningTime
	case util.FieldAge:
		return &r.Age
	case util.FieldPatientID:
		return &r.PatientID
	default:
		return nil
	}
}

// Apply assigns every parsed field onto the record.
func (r *Record) Apply(fields util.ParsedFields) {
	for k, v := range fields {
		r.Set(k, v)
	}
}

// Missing returns the keys of empty fields in form order.
func (r Record) Missing() []string {
	values := r.Fields()
	return lo.Filter(util.FieldKeys(), func(k string, _ int) bool {
		return values[k] == ""
	})
}

// IsEmpty reports whether no field has been filled in.
func (r Record) IsEmpty() bool {
	return len(r.Missing()) == len(util.FieldKeys())
}
