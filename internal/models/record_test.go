// ABOUTME: Tests for the health document model.
// ABOUTME: Covers normalization, patch merging, and search-field matching.
package models

import (
	"encoding/json"
	"testing"
)

func TestNormalize(t *testing.T) {
	var doc Document
	doc.Normalize()

	if doc.Sleep == nil || doc.Insulin == nil || doc.Medication == nil || doc.Exercise == nil {
		t.Fatal("Normalize left nil fields")
	}
}

func TestDocumentJSONDefaults(t *testing.T) {
	// Missing keys behave as empty after normalization
	var doc Document
	if err := json.Unmarshal([]byte(`{"insulin":[{"id":"i1","time":"08:00","dosage":"10"}]}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	doc.Normalize()

	if len(doc.Insulin) != 1 {
		t.Errorf("insulin len = %d", len(doc.Insulin))
	}
	if doc.Sleep == nil || doc.Medication == nil || doc.Exercise == nil {
		t.Error("absent keys should normalize to empty")
	}
}

func TestIsValidDay(t *testing.T) {
	for _, day := range Days {
		if !IsValidDay(day) {
			t.Errorf("IsValidDay(%q) = false", day)
		}
	}
	for _, bad := range []string{"Monday", "funday", "", "mon"} {
		if IsValidDay(bad) {
			t.Errorf("IsValidDay(%q) = true", bad)
		}
	}
}

func TestIsEntryKind(t *testing.T) {
	for _, k := range EntryKinds {
		if !IsEntryKind(k) {
			t.Errorf("IsEntryKind(%q) = false", k)
		}
	}
	if IsEntryKind(KindSleep) {
		t.Error("sleep must not be an entry kind")
	}
	if IsEntryKind("vitamins") {
		t.Error("unknown kind must not be an entry kind")
	}
}

func TestPatchApply(t *testing.T) {
	newTime := "09:00"
	newName := "Ibuprofen"

	med := MedicationEntry{ID: "m1", Name: "Aspirin", Time: "08:00"}
	got := Patch{Time: &newTime}.ApplyToMedication(med)
	if got.ID != "m1" || got.Name != "Aspirin" || got.Time != "09:00" {
		t.Errorf("partial patch wrong: %+v", got)
	}

	got = Patch{Name: &newName, Time: &newTime}.ApplyToMedication(med)
	if got.Name != "Ibuprofen" || got.Time != "09:00" {
		t.Errorf("full patch wrong: %+v", got)
	}

	newDosage := "12"
	ins := InsulinEntry{ID: "i1", Dosage: "10", Time: "08:00"}
	gotIns := Patch{Dosage: &newDosage}.ApplyToInsulin(ins)
	if gotIns.ID != "i1" || gotIns.Dosage != "12" || gotIns.Time != "08:00" {
		t.Errorf("insulin patch wrong: %+v", gotIns)
	}
}

func TestPatchApplyToExerciseLegacyField(t *testing.T) {
	newActivity := "Swimming"

	// Entry with legacy field set: both fields follow the patch
	e := ExerciseEntry{ID: "e1", Activity: "Running", Type: "Running", Duration: "30"}
	got := Patch{Activity: &newActivity}.ApplyToExercise(e)
	if got.Activity != "Swimming" || got.Type != "Swimming" {
		t.Errorf("legacy field not kept in sync: %+v", got)
	}

	// Entry without legacy field: it stays empty
	e = ExerciseEntry{ID: "e2", Activity: "Running", Duration: "30"}
	got = Patch{Activity: &newActivity}.ApplyToExercise(e)
	if got.Type != "" {
		t.Errorf("legacy field appeared from nowhere: %+v", got)
	}
}

func TestPatchIsEmpty(t *testing.T) {
	if !(Patch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	v := "x"
	if (Patch{Duration: &v}).IsEmpty() {
		t.Error("non-zero patch should not be empty")
	}
}

func TestMatchesTerm(t *testing.T) {
	entry := MedicationEntry{ID: "m1", Name: "Aspirin", Time: "08:00"}

	tests := []struct {
		term string
		want bool
	}{
		{"aspirin", true},
		{"ASPIRIN", true},
		{"spir", true},
		{"08:00", true},
		{"m1", true},
		{"ibuprofen", false},
		{"09:", false},
	}
	for _, tt := range tests {
		if got := MatchesTerm(entry.SearchFields(), tt.term); got != tt.want {
			t.Errorf("MatchesTerm(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestNewEntriesHaveUniqueIDs(t *testing.T) {
	a := NewMedicationEntry("Aspirin", "08:00")
	b := NewMedicationEntry("Aspirin", "08:00")
	if a.ID == "" || b.ID == "" {
		t.Fatal("expected generated IDs")
	}
	if a.ID == b.ID {
		t.Error("IDs must be unique")
	}
}
