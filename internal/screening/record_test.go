package screening

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mrsinham/screenforge/internal/util"
)

func TestRecordSetGet(t *testing.T) {
	var r Record
	for _, key := range util.FieldKeys() {
		if !r.Set(key, "v-"+key) {
			t.Fatalf("Set(%q) returned false", key)
		}
	}
	for _, key := range util.FieldKeys() {
		if got := r.Get(key); got != "v-"+key {
			t.Errorf("Get(%q) = %q", key, got)
		}
	}
	if r.Set("unknown", "x") {
		t.Error("Set(unknown) should return false")
	}
}

func TestRecordMissing(t *testing.T) {
	r := Record{FullName: "Иван Петров", PatientID: "1234567890"}
	want := []string{util.FieldDateOfBirth, util.FieldDoctor, util.FieldCoordinator, util.FieldScreeningTime, util.FieldAge}
	if diff := cmp.Diff(want, r.Missing()); diff != "" {
		t.Errorf("Missing() mismatch (-want +got):\n%s", diff)
	}
	if r.IsEmpty() {
		t.Error("record with values should not be empty")
	}
	if !(Record{}).IsEmpty() {
		t.Error("zero record should be empty")
	}
}

func TestRecordApply(t *testing.T) {
	var r Record
	r.Apply(util.ParsedFields{util.FieldAge: "42", util.FieldDoctor: "Д-р Иванов"})
	if r.Age != "42" || r.DoctorName != "Д-р Иванов" {
		t.Errorf("Apply did not assign fields: %+v", r)
	}
}

func TestRecordFieldPtr(t *testing.T) {
	var r Record
	for _, key := range util.FieldKeys() {
		p := r.FieldPtr(key)
		if p == nil {
			t.Fatalf("FieldPtr(%q) = nil", key)
		}
		*p = "v-" + key
	}
	for _, key := range util.FieldKeys() {
		if got := r.Get(key); got != "v-"+key {
			t.Errorf("Get(%q) = %q after writing through FieldPtr", key, got)
		}
	}
	if r.FieldPtr("sex") != nil {
		t.Error("unknown key should give nil")
	}
}
