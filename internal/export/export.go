package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Rana718/carga/internal/seeder"
)

// Report is the on-disk form of a run summary.
type Report struct {
	RunID        string              `json:"run_id" yaml:"run_id"`
	Timestamp    string              `json:"timestamp" yaml:"timestamp"`
	Total        int64               `json:"total" yaml:"total"`
	Succeeded    int64               `json:"succeeded" yaml:"succeeded"`
	Rejected     int64               `json:"rejected" yaml:"rejected"`
	SucceededPct float64             `json:"succeeded_pct" yaml:"succeeded_pct"`
	RejectedPct  float64             `json:"rejected_pct" yaml:"rejected_pct"`
	Elapsed      string              `json:"elapsed" yaml:"elapsed"`
	Stages       []seeder.StageCount `json:"stages" yaml:"stages"`
}

func NewReport(s seeder.Summary, at time.Time) Report {
	return Report{
		RunID:        s.RunID,
		Timestamp:    at.Format("2006-01-02 15:04:05"),
		Total:        s.Total,
		Succeeded:    s.Succeeded,
		Rejected:     s.Rejected,
		SucceededPct: s.SucceededPct,
		RejectedPct:  s.RejectedPct,
		Elapsed:      s.Elapsed.Round(time.Millisecond).String(),
		Stages:       s.Stages,
	}
}

// WriteSummary writes the summary to path in the format implied by its
// extension: .csv, .yaml/.yml, or JSON for anything else.
func WriteSummary(path string, s seeder.Summary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	report := NewReport(s, time.Now())
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSV(path, report)
	case ".yaml", ".yml":
		return writeYAML(path, report)
	default:
		return writeJSON(path, report)
	}
}

func writeJSON(path string, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func writeYAML(path string, report Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// writeCSV emits one row per stage followed by a Total row.
func writeCSV(path string, report Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Write([]string{"stage", "attempted", "succeeded", "rejected"})
	for _, sc := range report.Stages {
		writer.Write(countRow(sc.Stage, sc.Attempted, sc.Succeeded, sc.Rejected))
	}
	writer.Write(countRow("Total", report.Total, report.Succeeded, report.Rejected))

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return file.Close()
}

func countRow(name string, counts ...int64) []string {
	row := []string{name}
	for _, n := range counts {
		row = append(row, strconv.FormatInt(n, 10))
	}
	return row
}
