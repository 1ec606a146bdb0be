// ABOUTME: MCP tool implementations for the health document.
// ABOUTME: Exposes the six logging/update/delete tools to LLM agents.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/vitalog/internal/models"
	"github.com/harperreed/vitalog/internal/resolver"
)

func (s *Server) registerTools() {
	// logExercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "logExercise",
		Description: "Logs an exercise session or physical activity.",
	}, s.handleLogExercise)

	// logInsulin
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "logInsulin",
		Description: "Logs an insulin dosage at a specific time.",
	}, s.handleLogInsulin)

	// logMedication
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "logMedication",
		Description: "Logs a medication intake at a specific time.",
	}, s.handleLogMedication)

	// updateSleepLog
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "updateSleepLog",
		Description: "Updates the sleep log for a specific day of the week.",
	}, s.handleUpdateSleepLog)

	// updateHealthRecord
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "updateHealthRecord",
		Description: "Updates an existing health record (insulin, medication, or exercise). " +
			"This cannot be used for sleep data. For sleep, use updateSleepLog. " +
			"Use the searchTerm to find the record to update. If multiple records are found, " +
			"ask the user for clarification.",
	}, s.handleUpdateHealthRecord)

	// deleteHealthRecord
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "deleteHealthRecord",
		Description: "Deletes a health record (insulin, medication, or exercise) based on its ID.",
	}, s.handleDeleteHealthRecord)
}

// Tool input/output types

type logExerciseInput struct {
	Activity string `json:"activity" jsonschema:"The type of activity (e.g. Running, Yoga, Hiking)"`
	Duration string `json:"duration" jsonschema:"The duration of the exercise in minutes"`
}

type logInsulinInput struct {
	Dosage string `json:"dosage" jsonschema:"The number of insulin units"`
	Time   string `json:"time,omitempty" jsonschema:"The time of the dosage in HH:mm format. Defaults to now if not provided"`
}

type logMedicationInput struct {
	Name string `json:"name" jsonschema:"The name of the medication"`
	Time string `json:"time,omitempty" jsonschema:"The time the medication was taken in HH:mm format. Defaults to now if not provided"`
}

type updateSleepLogInput struct {
	Day   string `json:"day" jsonschema:"The day of the week to update (monday through sunday)"`
	Hours string `json:"hours" jsonschema:"The number of hours the user slept"`
}

type recordUpdates struct {
	Time     *string `json:"time,omitempty" jsonschema:"New time value"`
	Dosage   *string `json:"dosage,omitempty" jsonschema:"New dosage value"`
	Name     *string `json:"name,omitempty" jsonschema:"New medication name"`
	Activity *string `json:"activity,omitempty" jsonschema:"New activity name"`
	Duration *string `json:"duration,omitempty" jsonschema:"New duration value"`
}

type updateHealthRecordInput struct {
	RecordType string        `json:"recordType" jsonschema:"The type of record to update (insulin, medication, exercise)"`
	SearchTerm string        `json:"searchTerm" jsonschema:"The term to search for in the record to identify it (e.g. aspirin, basketball, 10 units)"`
	Updates    recordUpdates `json:"updates" jsonschema:"The fields and new values to update"`
}

type deleteHealthRecordInput struct {
	RecordType string `json:"recordType" jsonschema:"The type of record to delete (insulin, medication, exercise)"`
	ID         string `json:"id" jsonschema:"The ID of the record to delete"`
}

type outcomeOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogExercise(ctx context.Context, req *mcp.CallToolRequest, input logExerciseInput) (*mcp.CallToolResult, outcomeOutput, error) {
	msg, err := s.res.AppendEntry(models.KindExercise, resolver.EntryFields{
		Activity: input.Activity,
		Duration: input.Duration,
	})
	if err != nil {
		return nil, outcomeOutput{}, fmt.Errorf("failed to log exercise: %w", err)
	}
	return nil, outcomeOutput{Message: msg}, nil
}

func (s *Server) handleLogInsulin(ctx context.Context, req *mcp.CallToolRequest, input logInsulinInput) (*mcp.CallToolResult, outcomeOutput, error) {
	msg, err := s.res.AppendEntry(models.KindInsulin, resolver.EntryFields{
		Dosage: input.Dosage,
		Time:   input.Time,
	})
	if err != nil {
		return nil, outcomeOutput{}, fmt.Errorf("failed to log insulin: %w", err)
	}
	return nil, outcomeOutput{Message: msg}, nil
}

func (s *Server) handleLogMedication(ctx context.Context, req *mcp.CallToolRequest, input logMedicationInput) (*mcp.CallToolResult, outcomeOutput, error) {
	msg, err := s.res.AppendEntry(models.KindMedication, resolver.EntryFields{
		Name: input.Name,
		Time: input.Time,
	})
	if err != nil {
		return nil, outcomeOutput{}, fmt.Errorf("failed to log medication: %w", err)
	}
	return nil, outcomeOutput{Message: msg}, nil
}

func (s *Server) handleUpdateSleepLog(ctx context.Context, req *mcp.CallToolRequest, input updateSleepLogInput) (*mcp.CallToolResult, outcomeOutput, error) {
	msg, err := s.res.ReplaceSleepWeek(input.Day, input.Hours)
	if err != nil {
		return nil, outcomeOutput{}, fmt.Errorf("failed to update sleep log: %w", err)
	}
	return nil, outcomeOutput{Message: msg}, nil
}

func (s *Server) handleUpdateHealthRecord(ctx context.Context, req *mcp.CallToolRequest, input updateHealthRecordInput) (*mcp.CallToolResult, outcomeOutput, error) {
	patch := models.Patch{
		Time:     input.Updates.Time,
		Dosage:   input.Updates.Dosage,
		Name:     input.Updates.Name,
		Activity: input.Updates.Activity,
		Duration: input.Updates.Duration,
	}
	msg, err := s.res.ResolveAndUpdate(models.RecordKind(input.RecordType), input.SearchTerm, patch)
	if err != nil {
		return nil, outcomeOutput{}, fmt.Errorf("failed to update record: %w", err)
	}
	return nil, outcomeOutput{Message: msg}, nil
}

func (s *Server) handleDeleteHealthRecord(ctx context.Context, req *mcp.CallToolRequest, input deleteHealthRecordInput) (*mcp.CallToolResult, outcomeOutput, error) {
	msg, err := s.res.ResolveAndDelete(models.RecordKind(input.RecordType), input.ID)
	if err != nil {
		return nil, outcomeOutput{}, fmt.Errorf("failed to delete record: %w", err)
	}
	return nil, outcomeOutput{Message: msg}, nil
}
