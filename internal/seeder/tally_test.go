package seeder

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeWithNoAttempts(t *testing.T) {
	tally := NewTally()
	tally.Register("Direcciones", "Titulos")

	s := tally.Summarize()
	assert.Zero(t, s.Total)
	assert.Zero(t, s.SucceededPct)
	assert.Zero(t, s.RejectedPct)
	assert.Equal(t, "no records attempted", s.String())
	assert.Equal(t, []StageCount{{Stage: "Direcciones"}, {Stage: "Titulos"}}, s.Stages)
}

func TestSummarizePercentages(t *testing.T) {
	tally := NewTally()
	for i := 0; i < 3; i++ {
		tally.Record("Profesores", Succeeded)
	}
	tally.Record("Profesores", Rejected)

	s := tally.Summarize()
	assert.EqualValues(t, 4, s.Total)
	assert.InDelta(t, 75.0, s.SucceededPct, 1e-9)
	assert.InDelta(t, 25.0, s.RejectedPct, 1e-9)
	assert.Equal(t, "4 records attempted: 3 succeeded (75.00%), 1 rejected (25.00%)", s.String())
	assert.Equal(t, StageCount{Stage: "Profesores", Attempted: 4, Succeeded: 3, Rejected: 1}, tally.Stage("Profesores"))
}

func TestTallyConcurrentRecords(t *testing.T) {
	tally := NewTally()
	var wg sync.WaitGroup
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				outcome := Succeeded
				if i%5 == 0 {
					outcome = Rejected
				}
				tally.Record([]string{"Familiares", "Seguros"}[w%2], outcome)
			}
		}(w)
	}
	wg.Wait()

	s := tally.Summarize()
	assert.EqualValues(t, 16*500, s.Total)
	assert.EqualValues(t, 16*100, s.Rejected)
	assert.Equal(t, s.Total, s.Succeeded+s.Rejected)

	var attempted int64
	for _, sc := range s.Stages {
		assert.Equal(t, sc.Attempted, sc.Succeeded+sc.Rejected)
		attempted += sc.Attempted
	}
	assert.Equal(t, s.Total, attempted)
}

func TestStageOfUnknownName(t *testing.T) {
	assert.Equal(t, StageCount{Stage: "Horarios"}, NewTally().Stage("Horarios"))
}

func TestPoolPickFromEmpty(t *testing.T) {
	pool := NewPool[Profesor]("Profesores")
	_, err := pool.Pick(NewRandomSource(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyPool))
	assert.Contains(t, err.Error(), "Profesores")
}

func TestPoolItemsIsASnapshot(t *testing.T) {
	pool := NewPool[Idioma]("Idiomas")
	pool.Add(Idioma{Nombre: "Español"}, Idioma{Nombre: "Inglés"})

	items := pool.Items()
	items[0].Nombre = "Guaraní"
	pool.Add(Idioma{Nombre: "Quechua"})

	assert.Equal(t, 3, pool.Len())
	assert.Equal(t, "Español", pool.Items()[0].Nombre)
	assert.Len(t, items, 2)

	got, err := pool.Pick(NewRandomSource(1))
	require.NoError(t, err)
	assert.Contains(t, []string{"Español", "Inglés", "Quechua"}, got.Nombre)
}
