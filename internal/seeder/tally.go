package seeder

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

type Outcome int

const (
	Succeeded Outcome = iota
	Rejected
)

// StageCount is the outcome split of a single stage.
type StageCount struct {
	Stage     string `json:"stage" yaml:"stage"`
	Attempted int64  `json:"attempted" yaml:"attempted"`
	Succeeded int64  `json:"succeeded" yaml:"succeeded"`
	Rejected  int64  `json:"rejected" yaml:"rejected"`
}

// Tally counts every insert attempt of a run. Safe for concurrent use.
type Tally struct {
	succeeded atomic.Int64
	rejected  atomic.Int64

	mu     sync.Mutex
	stages map[string]*StageCount
	order  []string
}

func NewTally() *Tally {
	return &Tally{stages: make(map[string]*StageCount)}
}

// Register lists stages up front so they appear in the summary even when
// they attempt nothing.
func (t *Tally) Register(stages ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, stage := range stages {
		t.entry(stage)
	}
}

func (t *Tally) entry(stage string) *StageCount {
	sc, ok := t.stages[stage]
	if !ok {
		sc = &StageCount{Stage: stage}
		t.stages[stage] = sc
		t.order = append(t.order, stage)
	}
	return sc
}

func (t *Tally) Record(stage string, outcome Outcome) {
	switch outcome {
	case Succeeded:
		t.succeeded.Add(1)
	case Rejected:
		t.rejected.Add(1)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	sc := t.entry(stage)
	sc.Attempted++
	if outcome == Succeeded {
		sc.Succeeded++
	} else {
		sc.Rejected++
	}
}

// Stage returns the counts recorded so far for one stage.
func (t *Tally) Stage(name string) StageCount {
	t.mu.Lock()
	defer t.mu.Unlock()
	if sc, ok := t.stages[name]; ok {
		return *sc
	}
	return StageCount{Stage: name}
}

// Summary is the read-only result of a run.
type Summary struct {
	RunID        string
	Total        int64
	Succeeded    int64
	Rejected     int64
	SucceededPct float64
	RejectedPct  float64
	Stages       []StageCount
	Elapsed      time.Duration
}

// Summarize never divides by zero; with no attempts both percentages are 0.
func (t *Tally) Summarize() Summary {
	s := Summary{
		Succeeded: t.succeeded.Load(),
		Rejected:  t.rejected.Load(),
	}
	s.Total = s.Succeeded + s.Rejected
	if s.Total > 0 {
		s.SucceededPct = 100 * float64(s.Succeeded) / float64(s.Total)
		s.RejectedPct = 100 * float64(s.Rejected) / float64(s.Total)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	s.Stages = make([]StageCount, 0, len(t.order))
	for _, name := range t.order {
		s.Stages = append(s.Stages, *t.stages[name])
	}
	return s
}

func (s Summary) String() string {
	if s.Total == 0 {
		return "no records attempted"
	}
	return fmt.Sprintf("%d records attempted: %d succeeded (%.2f%%), %d rejected (%.2f%%)",
		s.Total, s.Succeeded, s.SucceededPct, s.Rejected, s.RejectedPct)
}
