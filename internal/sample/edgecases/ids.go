package edgecases

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// IDFormat represents different patient ID formats
type IDFormat int

const (
	IDWithDashes  IDFormat = iota // e.g., "123-456-789"
	IDWithLetters                 // e.g., "A1B2C3D4E5"
	IDWithSpaces                  // e.g., "PAT 12345 67"
	IDLong                        // MaxFieldLength characters
	IDShort                       // 1-3 digits, shorter than the last-four file suffix
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateLongPatientID generates an ID of MaxFieldLength characters
func GenerateLongPatientID(rng *rand.Rand) string {
	var sb strings.Builder
	for i := 0; i < MaxFieldLength; i++ {
		sb.WriteByte(idAlphabet[rng.IntN(len(idAlphabet))])
	}
	return sb.String()
}

// GenerateVariedPatientID generates a patient ID in the specified format
func GenerateVariedPatientID(format IDFormat, rng *rand.Rand) string {
	switch format {
	case IDWithDashes:
		return fmt.Sprintf("%03d-%03d-%03d", rng.IntN(1000), rng.IntN(1000), rng.IntN(1000))
	case IDWithLetters:
		var sb strings.Builder
		for i := 0; i < 10; i++ {
			if i%2 == 0 {
				sb.WriteByte('A' + byte(rng.IntN(26)))
			} else {
				sb.WriteByte('0' + byte(rng.IntN(10)))
			}
		}
		return sb.String()
	case IDWithSpaces:
		return fmt.Sprintf("PAT %05d %02d", rng.IntN(100000), rng.IntN(100))
	case IDLong:
		return GenerateLongPatientID(rng)
	case IDShort:
		n := 1 + rng.IntN(3)
		return fmt.Sprintf("%0*d", n, rng.IntN(pow10(n)))
	default:
		return fmt.Sprintf("%010d", rng.Int64N(10_000_000_000))
	}
}

func pow10(n int) int {
	p := 1
	for range n {
		p *= 10
	}
	return p
}

// GenerateRandomVariedPatientID randomly selects a format
func GenerateRandomVariedPatientID(rng *rand.Rand) string {
	return GenerateVariedPatientID(IDFormat(rng.IntN(5)), rng)
}
