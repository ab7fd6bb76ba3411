// Package util provides lookup tables and name data shared by the screening tools.
package util

import (
	"fmt"
	"sort"
	"strings"
)

// FieldGroup tells which part of the screening form a field belongs to.
type FieldGroup int

const (
	// GroupPatient holds fields identifying the patient.
	GroupPatient FieldGroup = iota
	// GroupVisit holds fields describing the screening visit.
	GroupVisit
)

// String returns the string representation of a FieldGroup.
func (g FieldGroup) String() string {
	switch g {
	case GroupPatient:
		return "Patient"
	case GroupVisit:
		return "Visit"
	default:
		return "Unknown"
	}
}

// FieldInfo describes one screening record field.
type FieldInfo struct {
	Key     string // canonical key, also the template placeholder name
	Label   string
	Group   FieldGroup
	Aliases []string
}

// Canonical field keys.
const (
	FieldFullName      = "full_name"
	FieldDateOfBirth   = "date_of_birth"
	FieldDoctor        = "doctor"
	FieldCoordinator   = "coordinator"
	FieldScreeningTime = "screening_time"
	FieldAge           = "age"
	FieldPatientID     = "patient_id"
)

// fields lists the record fields in form order.
var fields = []FieldInfo{
	{Key: FieldFullName, Label: "Patient's Full Name", Group: GroupPatient, Aliases: []string{"name", "names", "fullname", "patient", "пациент", "име"}},
	{Key: FieldDateOfBirth, Label: "Date of Birth", Group: GroupPatient, Aliases: []string{"dob", "birth_date", "birthdate", "дата на раждане"}},
	{Key: FieldDoctor, Label: "Doctor's Name", Group: GroupVisit, Aliases: []string{"doctor_name", "physician", "лекар"}},
	{Key: FieldCoordinator, Label: "Coordinator's Name", Group: GroupVisit, Aliases: []string{"coordinator_name", "координатор"}},
	{Key: FieldScreeningTime, Label: "Screening Time", Group: GroupVisit, Aliases: []string{"time", "screeningtime", "час"}},
	{Key: FieldAge, Label: "Patient's Age", Group: GroupPatient, Aliases: []string{"years", "възраст"}},
	{Key: FieldPatientID, Label: "Patient's ID Number", Group: GroupPatient, Aliases: []string{"id", "patientid", "number", "номер"}},
}

// fieldRegistry maps lowercase keys and aliases to their FieldInfo.
var fieldRegistry = buildRegistry()

func buildRegistry() map[string]FieldInfo {
	reg := make(map[string]FieldInfo)
	for _, f := range fields {
		reg[f.Key] = f
		reg[strings.ReplaceAll(f.Key, "_", "")] = f
		for _, a := range f.Aliases {
			reg[strings.ToLower(a)] = f
		}
	}
	return reg
}

// Fields returns every field in form order.
func Fields() []FieldInfo {
	out := make([]FieldInfo, len(fields))
	copy(out, fields)
	return out
}

// FieldKeys returns the canonical keys in form order.
func FieldKeys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

// GetFieldByName returns FieldInfo for a key or alias.
// The lookup is case-insensitive. If the field is not found, an error is returned
// with a suggestion for the closest matching key (using Levenshtein distance).
func GetFieldByName(name string) (FieldInfo, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	if info, ok := fieldRegistry[normalized]; ok {
		return info, nil
	}
	// aliases with spaces are stored as written
	if info, ok := fieldRegistry[strings.ReplaceAll(normalized, "_", " ")]; ok {
		return info, nil
	}

	if suggestion := findClosestFieldName(normalized); suggestion != "" {
		return FieldInfo{}, fmt.Errorf("unknown field %q, did you mean %q?", name, suggestion)
	}
	return FieldInfo{}, fmt.Errorf("unknown field %q", name)
}

// ParsedFields maps canonical keys to values.
type ParsedFields map[string]string

// ParseFieldFlags parses "key=value" assignments into canonical keys.
// Later assignments to the same field win.
func ParseFieldFlags(assignments []string) (ParsedFields, error) {
	parsed := make(ParsedFields, len(assignments))
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid field %q, expected key=value", a)
		}
		info, err := GetFieldByName(key)
		if err != nil {
			return nil, err
		}
		parsed[info.Key] = value
	}
	return parsed, nil
}

// findClosestFieldName finds the closest registered key using Levenshtein distance.
// Returns empty string if no close match is found (distance > 3).
func findClosestFieldName(input string) string {
	const maxDistance = 3
	bestDistance := maxDistance + 1
	var bestMatch string

	// sorted for a stable suggestion when distances tie
	keys := make([]string, 0, len(fieldRegistry))
	for k := range fieldRegistry {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		distance := levenshteinDistance(input, key)
		if distance < bestDistance {
			bestDistance = distance
			bestMatch = fieldRegistry[key].Key
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshteinDistance calculates the Levenshtein distance between two strings,
// counting runes so Cyrillic aliases compare correctly.
func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
	}
	for i := 0; i <= len(ra); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(ra)][len(rb)]
}
