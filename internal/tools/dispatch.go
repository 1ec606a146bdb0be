// ABOUTME: Tool dispatcher mapping tool names and JSON parameter bags to resolver operations.
// ABOUTME: Backs the avatar HTTP tool endpoint; outcome text passes through unchanged.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/harperreed/vitalog/internal/models"
	"github.com/harperreed/vitalog/internal/resolver"
)

// Tool names exposed to external agents. These are part of the observable
// contract shared with the avatar persona config.
const (
	ToolLogExercise        = "logExercise"
	ToolLogInsulin         = "logInsulin"
	ToolLogMedication      = "logMedication"
	ToolUpdateSleepLog     = "updateSleepLog"
	ToolUpdateHealthRecord = "updateHealthRecord"
	ToolDeleteHealthRecord = "deleteHealthRecord"
)

// Names lists every dispatchable tool.
var Names = []string{
	ToolLogExercise,
	ToolLogInsulin,
	ToolLogMedication,
	ToolUpdateSleepLog,
	ToolUpdateHealthRecord,
	ToolDeleteHealthRecord,
}

// LogExerciseParams are the parameters for logExercise.
type LogExerciseParams struct {
	Activity string `json:"activity" validate:"required"`
	Duration string `json:"duration" validate:"required"`
}

// LogInsulinParams are the parameters for logInsulin.
type LogInsulinParams struct {
	Dosage string `json:"dosage" validate:"required"`
	Time   string `json:"time"`
}

// LogMedicationParams are the parameters for logMedication.
type LogMedicationParams struct {
	Name string `json:"name" validate:"required"`
	Time string `json:"time"`
}

// UpdateSleepLogParams are the parameters for updateSleepLog.
type UpdateSleepLogParams struct {
	Day   string `json:"day" validate:"required"`
	Hours string `json:"hours" validate:"required"`
}

// UpdateHealthRecordParams are the parameters for updateHealthRecord.
type UpdateHealthRecordParams struct {
	RecordType string       `json:"recordType" validate:"required"`
	SearchTerm string       `json:"searchTerm" validate:"required"`
	Updates    models.Patch `json:"updates"`
}

// DeleteHealthRecordParams are the parameters for deleteHealthRecord.
type DeleteHealthRecordParams struct {
	RecordType string `json:"recordType" validate:"required"`
	ID         string `json:"id" validate:"required"`
}

// Dispatcher routes tool invocations to the resolver.
type Dispatcher struct {
	res      *resolver.Resolver
	validate *validator.Validate
}

// NewDispatcher creates a dispatcher over the given resolver.
func NewDispatcher(res *resolver.Resolver) *Dispatcher {
	return &Dispatcher{
		res:      res,
		validate: validator.New(),
	}
}

// Call invokes the named tool with the raw JSON parameter bag and returns
// its outcome text. Unknown tools and malformed parameters are errors; a
// persistence failure from the resolver propagates unchanged.
func (d *Dispatcher) Call(name string, params json.RawMessage) (string, error) {
	switch name {
	case ToolLogExercise:
		var p LogExerciseParams
		if err := d.decode(params, &p); err != nil {
			return "", err
		}
		return d.res.AppendEntry(models.KindExercise, resolver.EntryFields{
			Activity: p.Activity,
			Duration: p.Duration,
		})

	case ToolLogInsulin:
		var p LogInsulinParams
		if err := d.decode(params, &p); err != nil {
			return "", err
		}
		return d.res.AppendEntry(models.KindInsulin, resolver.EntryFields{
			Dosage: p.Dosage,
			Time:   p.Time,
		})

	case ToolLogMedication:
		var p LogMedicationParams
		if err := d.decode(params, &p); err != nil {
			return "", err
		}
		return d.res.AppendEntry(models.KindMedication, resolver.EntryFields{
			Name: p.Name,
			Time: p.Time,
		})

	case ToolUpdateSleepLog:
		var p UpdateSleepLogParams
		if err := d.decode(params, &p); err != nil {
			return "", err
		}
		return d.res.ReplaceSleepWeek(p.Day, p.Hours)

	case ToolUpdateHealthRecord:
		var p UpdateHealthRecordParams
		if err := d.decode(params, &p); err != nil {
			return "", err
		}
		return d.res.ResolveAndUpdate(models.RecordKind(p.RecordType), p.SearchTerm, p.Updates)

	case ToolDeleteHealthRecord:
		var p DeleteHealthRecordParams
		if err := d.decode(params, &p); err != nil {
			return "", err
		}
		return d.res.ResolveAndDelete(models.RecordKind(p.RecordType), p.ID)

	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

// decode unmarshals and validates a parameter struct.
func (d *Dispatcher) decode(params json.RawMessage, out any) error {
	if len(params) == 0 {
		params = json.RawMessage("{}")
	}
	if err := json.Unmarshal(params, out); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	if err := d.validate.Struct(out); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}
