// ABOUTME: Record resolver and mutator: free-text search, disambiguation, and mutation.
// ABOUTME: All mutations are serialized read-modify-write cycles against the store.
package resolver

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/harperreed/vitalog/internal/models"
	"github.com/harperreed/vitalog/internal/store"
)

// Guidance strings returned when the entry-oriented tools are pointed at
// sleep data, which has no identity-bearing entries.
const (
	SleepUpdateGuidance = "Cannot update sleep data with this tool. Use the 'updateSleepLog' tool instead."
	SleepDeleteGuidance = "Cannot delete sleep data with this tool."
)

// Resolver translates free-text intent into deterministic document
// mutations. Every operation returns a human-readable outcome message meant
// for direct display to the user; the only error it ever returns is a
// persistence failure, whose success must not be narrated.
//
// The mutex serializes read-modify-write cycles so two concurrent tool calls
// cannot silently clobber each other's writes.
type Resolver struct {
	store store.Store
	mu    sync.Mutex
	now   func() time.Time
}

// New creates a resolver over the given store.
func New(s store.Store) *Resolver {
	return &Resolver{store: s, now: time.Now}
}

// WithClock overrides the wall clock used for default entry times.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// EntryFields holds the kind-specific values for a new entry. Unused fields
// are ignored for the target kind.
type EntryFields struct {
	Dosage   string
	Name     string
	Activity string
	Duration string
	Time     string
}

// match pairs an entry's id with its full field dump for disambiguation.
type match struct {
	index int
	id    string
	dump  string
}

// ResolveAndUpdate finds the single entry matching searchTerm in the kind's
// list and merges patch onto it. Zero or multiple matches leave the document
// untouched and report back in the outcome text.
func (r *Resolver) ResolveAndUpdate(kind models.RecordKind, searchTerm string, patch models.Patch) (string, error) {
	if kind == models.KindSleep {
		return SleepUpdateGuidance, nil
	}
	if !models.IsEntryKind(kind) {
		return fmt.Sprintf("Unknown record type: %s.", kind), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.store.Load()

	if listLen(doc, kind) == 0 {
		return fmt.Sprintf("No records found for type: %s.", kind), nil
	}

	matches := findMatches(doc, kind, searchTerm)
	if len(matches) == 0 {
		return fmt.Sprintf("Record containing %q not found in %s log.", searchTerm, kind), nil
	}
	if len(matches) > 1 {
		options := make([]string, len(matches))
		for i, m := range matches {
			options[i] = fmt.Sprintf("ID: %s, Details: %s", m.id, m.dump)
		}
		return fmt.Sprintf("Multiple records found for %q. Please be more specific. Options are: %s",
			searchTerm, strings.Join(options, "; ")), nil
	}

	applyPatch(&doc, kind, matches[0].index, patch)

	if err := r.store.Save(doc); err != nil {
		return "", fmt.Errorf("update %s record: %w", kind, err)
	}
	return fmt.Sprintf("Successfully updated %s record.", kind), nil
}

// ResolveAndDelete removes the entry with the given id from the kind's list.
// Deleting a nonexistent id reports not-found; it is never an error.
func (r *Resolver) ResolveAndDelete(kind models.RecordKind, id string) (string, error) {
	if kind == models.KindSleep {
		return SleepDeleteGuidance, nil
	}
	if !models.IsEntryKind(kind) {
		return fmt.Sprintf("Unknown record type: %s.", kind), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.store.Load()

	before := listLen(doc, kind)
	if before == 0 {
		return fmt.Sprintf("No records found for type: %s.", kind), nil
	}

	removeByID(&doc, kind, id)
	if listLen(doc, kind) == before {
		return fmt.Sprintf("Record with ID %s not found in %s log.", id, kind), nil
	}

	if err := r.store.Save(doc); err != nil {
		return "", fmt.Errorf("delete %s record: %w", kind, err)
	}
	return fmt.Sprintf("Successfully deleted record from %s log.", kind), nil
}

// AppendEntry adds a new entry to the end of the kind's list. Time-bearing
// kinds default to the current wall-clock time when none is given.
func (r *Resolver) AppendEntry(kind models.RecordKind, fields EntryFields) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.store.Load()

	var outcome string
	switch kind {
	case models.KindInsulin:
		entryTime := r.defaultTime(fields.Time)
		doc.Insulin = append(doc.Insulin, models.NewInsulinEntry(fields.Dosage, entryTime))
		outcome = fmt.Sprintf("Logged %s units of insulin at %s.", fields.Dosage, entryTime)
	case models.KindMedication:
		entryTime := r.defaultTime(fields.Time)
		doc.Medication = append(doc.Medication, models.NewMedicationEntry(fields.Name, entryTime))
		outcome = fmt.Sprintf("Logged %s taken at %s.", fields.Name, entryTime)
	case models.KindExercise:
		doc.Exercise = append(doc.Exercise, models.NewExerciseEntry(fields.Activity, fields.Duration))
		outcome = fmt.Sprintf("Logged %s minutes of %s.", fields.Duration, fields.Activity)
	default:
		return fmt.Sprintf("Unknown record type: %s.", kind), nil
	}

	if err := r.store.Save(doc); err != nil {
		return "", fmt.Errorf("log %s entry: %w", kind, err)
	}
	return outcome, nil
}

// ReplaceSleepWeek merges a single day's hours onto the sleep map, leaving
// the other days untouched.
func (r *Resolver) ReplaceSleepWeek(day, hours string) (string, error) {
	day = strings.ToLower(day)
	if !models.IsValidDay(day) {
		return fmt.Sprintf("Unknown day of the week: %s.", day), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.store.Load()
	doc.Sleep[day] = hours

	if err := r.store.Save(doc); err != nil {
		return "", fmt.Errorf("update sleep log: %w", err)
	}
	return fmt.Sprintf("Sleep for %s updated to %s hours.", day, hours), nil
}

// defaultTime returns t, or the current wall-clock HH:mm when t is empty.
func (r *Resolver) defaultTime(t string) string {
	if t != "" {
		return t
	}
	return r.now().Format("15:04")
}

// findMatches collects every entry whose flattened text contains the search
// term, preserving list order. Membership is substring-based and un-ranked.
func findMatches(doc models.Document, kind models.RecordKind, term string) []match {
	var matches []match
	switch kind {
	case models.KindInsulin:
		for i, e := range doc.Insulin {
			if models.MatchesTerm(e.SearchFields(), term) {
				matches = append(matches, match{index: i, id: e.ID, dump: models.Dump(e)})
			}
		}
	case models.KindMedication:
		for i, e := range doc.Medication {
			if models.MatchesTerm(e.SearchFields(), term) {
				matches = append(matches, match{index: i, id: e.ID, dump: models.Dump(e)})
			}
		}
	case models.KindExercise:
		for i, e := range doc.Exercise {
			if models.MatchesTerm(e.SearchFields(), term) {
				matches = append(matches, match{index: i, id: e.ID, dump: models.Dump(e)})
			}
		}
	}
	return matches
}

// applyPatch merges patch onto the entry at index, in place. IDs survive.
func applyPatch(doc *models.Document, kind models.RecordKind, index int, patch models.Patch) {
	switch kind {
	case models.KindInsulin:
		doc.Insulin[index] = patch.ApplyToInsulin(doc.Insulin[index])
	case models.KindMedication:
		doc.Medication[index] = patch.ApplyToMedication(doc.Medication[index])
	case models.KindExercise:
		doc.Exercise[index] = patch.ApplyToExercise(doc.Exercise[index])
	}
}

// removeByID filters the kind's list, dropping entries whose id equals id.
func removeByID(doc *models.Document, kind models.RecordKind, id string) {
	switch kind {
	case models.KindInsulin:
		kept := doc.Insulin[:0]
		for _, e := range doc.Insulin {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		doc.Insulin = kept
	case models.KindMedication:
		kept := doc.Medication[:0]
		for _, e := range doc.Medication {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		doc.Medication = kept
	case models.KindExercise:
		kept := doc.Exercise[:0]
		for _, e := range doc.Exercise {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		doc.Exercise = kept
	}
}

// listLen returns the length of the kind's entry list.
func listLen(doc models.Document, kind models.RecordKind) int {
	switch kind {
	case models.KindInsulin:
		return len(doc.Insulin)
	case models.KindMedication:
		return len(doc.Medication)
	case models.KindExercise:
		return len(doc.Exercise)
	}
	return 0
}
