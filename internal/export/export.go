// ABOUTME: Export and import functionality for the health document.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/vitalog/internal/models"
)

// Envelope wraps the health document with export metadata.
type Envelope struct {
	Version    string          `json:"version" yaml:"version"`
	ExportedAt time.Time       `json:"exported_at" yaml:"exported_at"`
	Tool       string          `json:"tool" yaml:"tool"`
	Data       models.Document `json:"data" yaml:"data"`
}

// NewEnvelope wraps a document for export.
func NewEnvelope(doc models.Document) *Envelope {
	return &Envelope{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "vitalog",
		Data:       doc,
	}
}

// JSON renders the envelope as indented JSON.
func (e *Envelope) JSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// YAML renders the envelope as YAML.
func (e *Envelope) YAML() ([]byte, error) {
	yamlData := struct {
		Version    string              `yaml:"version"`
		ExportedAt string              `yaml:"exported_at"`
		Tool       string              `yaml:"tool"`
		Sleep      map[string]string   `yaml:"sleep"`
		Insulin    []map[string]string `yaml:"insulin"`
		Medication []map[string]string `yaml:"medication"`
		Exercise   []map[string]string `yaml:"exercise"`
	}{
		Version:    e.Version,
		ExportedAt: e.ExportedAt.Format(time.RFC3339),
		Tool:       e.Tool,
		Sleep:      e.Data.Sleep,
	}

	for _, entry := range e.Data.Insulin {
		yamlData.Insulin = append(yamlData.Insulin, map[string]string{
			"id":     entry.ID,
			"time":   entry.Time,
			"dosage": entry.Dosage,
		})
	}
	for _, entry := range e.Data.Medication {
		yamlData.Medication = append(yamlData.Medication, map[string]string{
			"id":   entry.ID,
			"time": entry.Time,
			"name": entry.Name,
		})
	}
	for _, entry := range e.Data.Exercise {
		yamlData.Exercise = append(yamlData.Exercise, map[string]string{
			"id":       entry.ID,
			"activity": entry.ActivityName(),
			"duration": entry.Duration,
		})
	}

	return yaml.Marshal(yamlData)
}

// Markdown renders the document as a Markdown report.
func (e *Envelope) Markdown() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Health Export - %s\n\n", e.ExportedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", e.ExportedAt.Format(time.RFC3339)))

	if len(e.Data.Sleep) > 0 {
		sb.WriteString("## Sleep\n\n")
		sb.WriteString("| Day | Hours |\n")
		sb.WriteString("|-----|-------|\n")
		for _, day := range models.Days {
			if hours, ok := e.Data.Sleep[day]; ok {
				sb.WriteString(fmt.Sprintf("| %s | %s |\n", day, hours))
			}
		}
		sb.WriteString("\n")
	}

	if len(e.Data.Insulin) > 0 {
		sb.WriteString("## Insulin\n\n")
		sb.WriteString("| Time | Dosage |\n")
		sb.WriteString("|------|--------|\n")
		for _, entry := range e.Data.Insulin {
			sb.WriteString(fmt.Sprintf("| %s | %s units |\n", entry.Time, entry.Dosage))
		}
		sb.WriteString("\n")
	}

	if len(e.Data.Medication) > 0 {
		sb.WriteString("## Medication\n\n")
		sb.WriteString("| Time | Name |\n")
		sb.WriteString("|------|------|\n")
		for _, entry := range e.Data.Medication {
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", entry.Time, entry.Name))
		}
		sb.WriteString("\n")
	}

	if len(e.Data.Exercise) > 0 {
		sb.WriteString("## Exercise\n\n")
		sb.WriteString("| Activity | Duration |\n")
		sb.WriteString("|----------|----------|\n")
		for _, entry := range e.Data.Exercise {
			sb.WriteString(fmt.Sprintf("| %s | %s min |\n", entry.ActivityName(), entry.Duration))
		}
	}

	return sb.String()
}

// ParseJSON reads an exported JSON envelope back into a document. Bare
// document exports (without the envelope) are accepted too.
func ParseJSON(data []byte) (models.Document, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return models.Document{}, fmt.Errorf("unmarshal JSON: %w", err)
	}

	if env.Tool == "" && env.Version == "" {
		var doc models.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return models.Document{}, fmt.Errorf("unmarshal JSON: %w", err)
		}
		doc.Normalize()
		return doc, nil
	}

	env.Data.Normalize()
	return env.Data, nil
}
