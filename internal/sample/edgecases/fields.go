package edgecases

import (
	"math/rand/v2"

	"github.com/mrsinham/screenforge/internal/util"
)

// OptionalFields lists the record fields that can be left empty.
// The name and the patient ID are always kept.
var OptionalFields = []string{
	util.FieldDateOfBirth,
	util.FieldDoctor,
	util.FieldCoordinator,
	util.FieldScreeningTime,
	util.FieldAge,
}

// SelectFieldsToOmit randomly selects which optional fields to leave empty
func SelectFieldsToOmit(rng *rand.Rand, count int) []string {
	if count >= len(OptionalFields) {
		return append([]string(nil), OptionalFields...)
	}
	// Fisher-Yates shuffle and take first count
	indices := make([]int, len(OptionalFields))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}
	result := make([]string, count)
	for i := 0; i < count; i++ {
		result[i] = OptionalFields[indices[i]]
	}
	return result
}
