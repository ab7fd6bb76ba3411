// Package sample generates synthetic screening records for demos and tests.
package sample

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/mrsinham/screenforge/internal/sample/edgecases"
	"github.com/mrsinham/screenforge/internal/screening"
	"github.com/mrsinham/screenforge/internal/util"
)

// DateLayout is the dd.mm.yyyy layout used for dates of birth.
const DateLayout = "02.01.2006"

// DefaultReference is the visit date used to derive ages when none is given.
var DefaultReference = time.Date(2024, time.November, 12, 0, 0, 0, 0, time.UTC)

// Options controls record generation.
type Options struct {
	Count      int
	Seed       uint64
	LatinShare float64 // 0.0-1.0
	EdgeCases  edgecases.Config
	Reference  time.Time // ages are computed at this date
}

// DefaultOptions returns options for count records with the default Latin share.
func DefaultOptions(count int, seed uint64) Options {
	return Options{
		Count:      count,
		Seed:       seed,
		LatinShare: util.LatinNameProbability,
		Reference:  DefaultReference,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", o.Count)
	}
	if o.LatinShare < 0 || o.LatinShare > 1 {
		return fmt.Errorf("latin share must be between 0 and 1, got %g", o.LatinShare)
	}
	return o.EdgeCases.Validate()
}

// Generate returns opts.Count records. The same options always give the same records.
func Generate(opts Options) ([]screening.Record, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	ref := opts.Reference
	if ref.IsZero() {
		ref = DefaultReference
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	app := edgecases.NewApplicator(opts.EdgeCases, rng)

	records := make([]screening.Record, opts.Count)
	for i := range records {
		sex := "M"
		if rng.IntN(2) == 0 {
			sex = "F"
		}

		age := 18 + rng.IntN(68)
		dob := ref.AddDate(-age, 0, -rng.IntN(365))

		rec := screening.Record{
			FullName:        util.GeneratePatientNameMix(sex, opts.LatinShare, rng),
			DateOfBirth:     dob.Format(DateLayout),
			DoctorName:      util.PickOne(util.DoctorNames, rng),
			CoordinatorName: util.PickOne(util.CoordinatorNames, rng),
			ScreeningTime:   fmt.Sprintf("%02d:%02d", 8+rng.IntN(9), rng.IntN(60)),
			Age:             strconv.Itoa(AgeAt(dob, ref)),
			PatientID:       strconv.FormatInt(1_000_000_000+rng.Int64N(9_000_000_000), 10),
		}

		if app.ShouldApply() {
			rec.FullName = app.ApplyToPatientName(sex, rec.FullName)
			rec.PatientID = app.ApplyToPatientID(rec.PatientID)
			rec.DateOfBirth = app.ApplyToBirthDate(rec.DateOfBirth)
			for _, key := range app.FieldsToOmit() {
				rec.Set(key, "")
			}
		}
		records[i] = rec
	}
	return records, nil
}

// AgeAt returns the age in whole years of someone born on dob at date at.
func AgeAt(dob, at time.Time) int {
	age := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		age--
	}
	return age
}
