// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests idPrefix, command flags, and end-to-end command runs.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/vitalog/internal/models"
)

func TestIDPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "long id truncated",
			input: "0b9fa9f8-1b42-4b88-9d2e-000000000000",
			want:  "0b9fa9f8",
		},
		{
			name:  "exactly eight chars",
			input: "abcdefgh",
			want:  "abcdefgh",
		},
		{
			name:  "short id unchanged",
			input: "abc",
			want:  "abc",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idPrefix(tt.input)
			if got != tt.want {
				t.Errorf("idPrefix(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "vitalog" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "vitalog")
	}

	if rootCmd.Short == "" {
		t.Error("Expected rootCmd.Short to be non-empty")
	}
}

func TestLogCmdFlags(t *testing.T) {
	atFlag := logCmd.PersistentFlags().Lookup("at")
	if atFlag == nil {
		t.Error("Expected --at flag on log command")
	}
}

func TestUpdateCmdFlags(t *testing.T) {
	for _, name := range []string{"time", "dosage", "name", "activity", "duration"} {
		if updateCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on update command", name)
		}
	}
}

func TestExportCmdFlags(t *testing.T) {
	outputFlag := exportCmd.Flags().Lookup("output")
	if outputFlag == nil {
		t.Error("Expected --output flag on export command")
	}
}

func TestServeCmdFlags(t *testing.T) {
	addrFlag := serveCmd.Flags().Lookup("addr")
	if addrFlag == nil {
		t.Error("Expected --addr flag on serve command")
	}
}

func TestRecordsCmdAliases(t *testing.T) {
	expectedAliases := map[string]bool{"ls": false, "list": false}

	for _, alias := range recordsCmd.Aliases {
		if _, ok := expectedAliases[alias]; ok {
			expectedAliases[alias] = true
		}
	}

	for alias, found := range expectedAliases {
		if !found {
			t.Errorf("Expected alias %q for recordsCmd", alias)
		}
	}
}

func TestDeleteCmdAliases(t *testing.T) {
	expectedAliases := map[string]bool{"del": false, "rm": false}

	for _, alias := range deleteCmd.Aliases {
		if _, ok := expectedAliases[alias]; ok {
			expectedAliases[alias] = true
		}
	}

	for alias, found := range expectedAliases {
		if !found {
			t.Errorf("Expected alias %q for deleteCmd", alias)
		}
	}
}

func TestMcpCmdExists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "mcp" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected mcp command to be registered")
	}
}

func TestServeCmdExists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "serve" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected serve command to be registered")
	}
}

// setupTestCLI redirects the file backend to a temp directory so commands
// run against a throwaway health document.
func setupTestCLI(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("VITALOG_BACKEND", "file")
	t.Setenv("VITALOG_DATA_DIR", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	return filepath.Join(tmpDir, "health-data.json")
}

// readTestDoc loads the document the CLI wrote.
func readTestDoc(t *testing.T, path string) models.Document {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read health data file: %v", err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to parse health data file: %v", err)
	}
	doc.Normalize()
	return doc
}

func TestLogInsulinCmd(t *testing.T) {
	dataPath := setupTestCLI(t)

	logAt = ""
	rootCmd.SetArgs([]string{"log", "insulin", "10", "--at", "08:30"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("log insulin command failed: %v", err)
	}

	doc := readTestDoc(t, dataPath)
	if len(doc.Insulin) != 1 {
		t.Fatalf("Expected 1 insulin entry, got %d", len(doc.Insulin))
	}
	if doc.Insulin[0].Dosage != "10" || doc.Insulin[0].Time != "08:30" {
		t.Errorf("Entry fields wrong: %+v", doc.Insulin[0])
	}
	if doc.Insulin[0].ID == "" {
		t.Error("Expected entry to have an ID")
	}
}

func TestLogMedicationCmdMultiWordName(t *testing.T) {
	dataPath := setupTestCLI(t)

	logAt = ""
	rootCmd.SetArgs([]string{"log", "medication", "Vitamin", "D"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("log medication command failed: %v", err)
	}

	doc := readTestDoc(t, dataPath)
	if len(doc.Medication) != 1 {
		t.Fatalf("Expected 1 medication entry, got %d", len(doc.Medication))
	}
	if doc.Medication[0].Name != "Vitamin D" {
		t.Errorf("Name = %q, want %q", doc.Medication[0].Name, "Vitamin D")
	}
	if doc.Medication[0].Time == "" {
		t.Error("Expected default time to be filled in")
	}
}

func TestLogExerciseCmd(t *testing.T) {
	dataPath := setupTestCLI(t)

	logAt = ""
	rootCmd.SetArgs([]string{"log", "exercise", "Running", "30"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("log exercise command failed: %v", err)
	}

	doc := readTestDoc(t, dataPath)
	if len(doc.Exercise) != 1 {
		t.Fatalf("Expected 1 exercise entry, got %d", len(doc.Exercise))
	}
	if doc.Exercise[0].Activity != "Running" || doc.Exercise[0].Duration != "30" {
		t.Errorf("Entry fields wrong: %+v", doc.Exercise[0])
	}
}

func TestSleepCmd(t *testing.T) {
	dataPath := setupTestCLI(t)

	rootCmd.SetArgs([]string{"sleep", "Tuesday", "7.5"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("sleep command failed: %v", err)
	}

	doc := readTestDoc(t, dataPath)
	if doc.Sleep["tuesday"] != "7.5" {
		t.Errorf("Sleep[tuesday] = %q, want 7.5", doc.Sleep["tuesday"])
	}
}

func TestSleepCmdInvalidDay(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"sleep", "blursday", "8"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("sleep command errored on unknown day: %v", err)
	}
	// Unknown day is an outcome message, not an error; nothing persisted either way.
}

func TestUpdateCmd(t *testing.T) {
	dataPath := setupTestCLI(t)

	logAt = ""
	rootCmd.SetArgs([]string{"log", "medication", "Aspirin"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("log medication failed: %v", err)
	}

	rootCmd.SetArgs([]string{"update", "medication", "aspirin", "--time", "09:00"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("update command failed: %v", err)
	}

	doc := readTestDoc(t, dataPath)
	if len(doc.Medication) != 1 {
		t.Fatalf("Expected 1 medication entry, got %d", len(doc.Medication))
	}
	if doc.Medication[0].Time != "09:00" {
		t.Errorf("Time = %q, want 09:00", doc.Medication[0].Time)
	}
	if doc.Medication[0].Name != "Aspirin" {
		t.Errorf("Name = %q, want Aspirin", doc.Medication[0].Name)
	}
}

func TestUpdateCmdNoFlags(t *testing.T) {
	setupTestCLI(t)

	// Clear flag state left over from earlier Execute calls.
	for _, name := range []string{"time", "dosage", "name", "activity", "duration"} {
		updateCmd.Flags().Lookup(name).Changed = false
	}

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"update", "medication", "aspirin"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error when no update flags are given")
	}
}

func TestDeleteCmd(t *testing.T) {
	dataPath := setupTestCLI(t)

	logAt = ""
	rootCmd.SetArgs([]string{"log", "insulin", "10"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("log insulin failed: %v", err)
	}

	doc := readTestDoc(t, dataPath)
	if len(doc.Insulin) != 1 {
		t.Fatalf("Expected 1 insulin entry, got %d", len(doc.Insulin))
	}
	id := doc.Insulin[0].ID

	rootCmd.SetArgs([]string{"delete", "insulin", id})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("delete command failed: %v", err)
	}

	doc = readTestDoc(t, dataPath)
	if len(doc.Insulin) != 0 {
		t.Errorf("Expected 0 insulin entries after delete, got %d", len(doc.Insulin))
	}
}

func TestRecordsCmd(t *testing.T) {
	setupTestCLI(t)

	logAt = ""
	rootCmd.SetArgs([]string{"log", "exercise", "Swimming", "45"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("log exercise failed: %v", err)
	}

	rootCmd.SetArgs([]string{"records"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("records command failed: %v", err)
	}
}

func TestRecordsCmdEmpty(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"records"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("records command on empty store failed: %v", err)
	}
}

func TestExportCmdToFile(t *testing.T) {
	setupTestCLI(t)

	logAt = ""
	rootCmd.SetArgs([]string{"log", "insulin", "6"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("log insulin failed: %v", err)
	}

	exportOutput = ""
	outFile := filepath.Join(t.TempDir(), "backup.json")
	rootCmd.SetArgs([]string{"export", "--output", outFile})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("export command failed: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("Expected export file to be created: %v", err)
	}

	var env struct {
		Tool string          `json:"tool"`
		Data models.Document `json:"data"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}
	if env.Tool != "vitalog" {
		t.Errorf("Export tool = %q, want vitalog", env.Tool)
	}
	if len(env.Data.Insulin) != 1 {
		t.Errorf("Expected exported document to contain 1 insulin entry, got %d", len(env.Data.Insulin))
	}
}

func TestImportCmd(t *testing.T) {
	dataPath := setupTestCLI(t)

	importFile := filepath.Join(t.TempDir(), "import.json")
	jsonData := `{
		"sleep": {"monday": "8"},
		"insulin": [{"id": "a1", "time": "08:00", "dosage": "10"}],
		"medication": [],
		"exercise": []
	}`
	if err := os.WriteFile(importFile, []byte(jsonData), 0644); err != nil {
		t.Fatalf("Failed to write import file: %v", err)
	}

	rootCmd.SetArgs([]string{"import", importFile})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("import command failed: %v", err)
	}

	doc := readTestDoc(t, dataPath)
	if doc.Sleep["monday"] != "8" {
		t.Errorf("Sleep[monday] = %q, want 8", doc.Sleep["monday"])
	}
	if len(doc.Insulin) != 1 || doc.Insulin[0].Dosage != "10" {
		t.Errorf("Imported insulin entries wrong: %+v", doc.Insulin)
	}
}

func TestImportCmdInvalidJSON(t *testing.T) {
	setupTestCLI(t)

	importFile := filepath.Join(t.TempDir(), "invalid.json")
	if err := os.WriteFile(importFile, []byte("not valid json"), 0644); err != nil {
		t.Fatalf("Failed to write import file: %v", err)
	}

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	rootCmd.SetArgs([]string{"import", importFile})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}
