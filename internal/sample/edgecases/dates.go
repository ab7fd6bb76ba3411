package edgecases

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// GeneratePartialDate drops the day, or the day and month, from a
// "dd.mm.yyyy" date, giving "mm.yyyy" or "yyyy". Any other input is
// replaced by a random partial date.
func GeneratePartialDate(original string, rng *rand.Rand) string {
	yearOnly := rng.IntN(2) == 0

	parts := strings.Split(original, ".")
	if len(parts) == 3 && len(parts[2]) == 4 {
		if yearOnly {
			return parts[2]
		}
		return parts[1] + "." + parts[2]
	}

	year := 1940 + rng.IntN(60)
	if yearOnly {
		return fmt.Sprintf("%04d", year)
	}
	return fmt.Sprintf("%02d.%04d", 1+rng.IntN(12), year)
}
