// ABOUTME: Health document model: sleep week plus insulin, medication, exercise entry lists.
// ABOUTME: Defines record kinds, entry constructors, and the update patch type.
package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// RecordKind identifies one of the four health record categories.
type RecordKind string

const (
	KindSleep      RecordKind = "sleep"
	KindInsulin    RecordKind = "insulin"
	KindMedication RecordKind = "medication"
	KindExercise   RecordKind = "exercise"
)

// EntryKinds are the kinds with identity-bearing list entries.
// Sleep is excluded: it is a per-day map with no entry IDs.
var EntryKinds = []RecordKind{KindInsulin, KindMedication, KindExercise}

// IsEntryKind reports whether k names an entry list (insulin, medication, exercise).
func IsEntryKind(k RecordKind) bool {
	switch k {
	case KindInsulin, KindMedication, KindExercise:
		return true
	}
	return false
}

// Days lists the canonical lowercase weekday keys for sleep data, Monday first.
var Days = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// IsValidDay checks if a string is a canonical sleep day key.
func IsValidDay(s string) bool {
	for _, d := range Days {
		if d == s {
			return true
		}
	}
	return false
}

// SleepWeek maps lowercase weekday names to slept hours (kept as text).
type SleepWeek map[string]string

// InsulinEntry records a single insulin dose.
type InsulinEntry struct {
	ID     string `json:"id"`
	Time   string `json:"time"`
	Dosage string `json:"dosage"`
}

// MedicationEntry records a single medication intake.
type MedicationEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Time string `json:"time"`
}

// ExerciseEntry records a single exercise session. The legacy "type" field
// carried the activity name in older documents and is preserved on disk.
type ExerciseEntry struct {
	ID       string `json:"id"`
	Activity string `json:"activity"`
	Duration string `json:"duration"`
	Type     string `json:"type,omitempty"`
}

// ActivityName returns the activity, falling back to the legacy field.
func (e ExerciseEntry) ActivityName() string {
	if e.Activity != "" {
		return e.Activity
	}
	return e.Type
}

// Document is the single persisted aggregate holding all health data.
type Document struct {
	Sleep      SleepWeek         `json:"sleep"`
	Insulin    []InsulinEntry    `json:"insulin"`
	Medication []MedicationEntry `json:"medication"`
	Exercise   []ExerciseEntry   `json:"exercise"`
}

// Normalize ensures every field is non-nil so readers never have to
// distinguish a missing list from an empty one.
func (d *Document) Normalize() {
	if d.Sleep == nil {
		d.Sleep = SleepWeek{}
	}
	if d.Insulin == nil {
		d.Insulin = []InsulinEntry{}
	}
	if d.Medication == nil {
		d.Medication = []MedicationEntry{}
	}
	if d.Exercise == nil {
		d.Exercise = []ExerciseEntry{}
	}
}

// NewDocument returns an empty, fully-defaulted document.
func NewDocument() Document {
	var d Document
	d.Normalize()
	return d
}

// NewInsulinEntry creates an insulin entry with a generated UUID.
func NewInsulinEntry(dosage, time string) InsulinEntry {
	return InsulinEntry{ID: uuid.New().String(), Dosage: dosage, Time: time}
}

// NewMedicationEntry creates a medication entry with a generated UUID.
func NewMedicationEntry(name, time string) MedicationEntry {
	return MedicationEntry{ID: uuid.New().String(), Name: name, Time: time}
}

// NewExerciseEntry creates an exercise entry with a generated UUID.
func NewExerciseEntry(activity, duration string) ExerciseEntry {
	return ExerciseEntry{ID: uuid.New().String(), Activity: activity, Duration: duration}
}

// Patch is a partial update for a list entry. Nil fields are left untouched;
// entry IDs are never modified by a patch.
type Patch struct {
	Time     *string `json:"time,omitempty"`
	Dosage   *string `json:"dosage,omitempty"`
	Name     *string `json:"name,omitempty"`
	Activity *string `json:"activity,omitempty"`
	Duration *string `json:"duration,omitempty"`
}

// IsEmpty reports whether the patch carries no fields.
func (p Patch) IsEmpty() bool {
	return p.Time == nil && p.Dosage == nil && p.Name == nil &&
		p.Activity == nil && p.Duration == nil
}

// ApplyToInsulin merges the patch onto an insulin entry.
func (p Patch) ApplyToInsulin(e InsulinEntry) InsulinEntry {
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Dosage != nil {
		e.Dosage = *p.Dosage
	}
	return e
}

// ApplyToMedication merges the patch onto a medication entry.
func (p Patch) ApplyToMedication(e MedicationEntry) MedicationEntry {
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Name != nil {
		e.Name = *p.Name
	}
	return e
}

// ApplyToExercise merges the patch onto an exercise entry. When the activity
// changes, the legacy field is updated too so old readers stay consistent.
func (p Patch) ApplyToExercise(e ExerciseEntry) ExerciseEntry {
	if p.Activity != nil {
		e.Activity = *p.Activity
		if e.Type != "" {
			e.Type = *p.Activity
		}
	}
	if p.Duration != nil {
		e.Duration = *p.Duration
	}
	return e
}

// SearchFields returns the flattened field values used for substring search.
// IDs are included so a search term can also be an ID fragment.
func (e InsulinEntry) SearchFields() []string {
	return []string{e.ID, e.Time, e.Dosage}
}

// SearchFields returns the flattened field values used for substring search.
func (e MedicationEntry) SearchFields() []string {
	return []string{e.ID, e.Name, e.Time}
}

// SearchFields returns the flattened field values used for substring search.
// The legacy activity field is searchable too.
func (e ExerciseEntry) SearchFields() []string {
	return []string{e.ID, e.Activity, e.Duration, e.Type}
}

// MatchesTerm reports whether any of fields contains term, case-insensitively.
func MatchesTerm(fields []string, term string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Dump renders an entry as compact JSON for disambiguation messages.
func Dump(entry any) string {
	b, err := json.Marshal(entry)
	if err != nil {
		return "{}"
	}
	return string(b)
}
