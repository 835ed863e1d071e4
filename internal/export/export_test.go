package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Rana718/carga/internal/seeder"
)

func sampleSummary() seeder.Summary {
	return seeder.Summary{
		RunID:        "0b6c7a4e-2f4f-4a55-9d7e-0f1d2b3c4d5e",
		Total:        9,
		Succeeded:    6,
		Rejected:     3,
		SucceededPct: 66.66666666666667,
		RejectedPct:  33.333333333333336,
		Elapsed:      1500 * time.Millisecond,
		Stages: []seeder.StageCount{
			{Stage: "Direcciones", Attempted: 5, Succeeded: 4, Rejected: 1},
			{Stage: "Empleadores", Attempted: 4, Succeeded: 2, Rejected: 2},
		},
	}
}

func TestWriteSummaryJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "resumen.json")
	require.NoError(t, WriteSummary(path, sampleSummary()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "0b6c7a4e-2f4f-4a55-9d7e-0f1d2b3c4d5e", got.RunID)
	assert.Equal(t, "1.5s", got.Elapsed)
	assert.EqualValues(t, 3, got.Rejected)
	if diff := cmp.Diff(sampleSummary().Stages, got.Stages); diff != "" {
		t.Errorf("stages mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSummaryYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resumen.yml")
	require.NoError(t, WriteSummary(path, sampleSummary()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.EqualValues(t, 9, got.Total)
	assert.Len(t, got.Stages, 2)
}

func TestWriteSummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resumen.csv")
	require.NoError(t, WriteSummary(path, sampleSummary()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"stage", "attempted", "succeeded", "rejected"},
		{"Direcciones", "5", "4", "1"},
		{"Empleadores", "4", "2", "2"},
		{"Total", "9", "6", "3"},
	}, records)
}
