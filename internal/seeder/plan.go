package seeder

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidPlan is returned when the dependency plan cannot be executed in order.
var ErrInvalidPlan = errors.New("invalid dependency plan")

type StageFunc func(ctx context.Context, s *Seeder) error

// Stage loads one table. DependsOn lists the stages whose pools it samples;
// References lists the static datasets it reads.
type Stage struct {
	Name       string    `yaml:"name"`
	DependsOn  []string  `yaml:"depends_on,omitempty"`
	References []string  `yaml:"references,omitempty"`
	Count      string    `yaml:"count"`
	Run        StageFunc `yaml:"-"`
}

type Plan struct {
	Stages []Stage `yaml:"stages"`
}

// Validate fails on duplicate or unnamed stages, unknown dependencies, cycles,
// and dependencies that do not run strictly earlier.
func (p Plan) Validate() error {
	index := make(map[string]int, len(p.Stages))
	for i, st := range p.Stages {
		if st.Name == "" {
			return fmt.Errorf("%w: stage %d has no name", ErrInvalidPlan, i)
		}
		if _, dup := index[st.Name]; dup {
			return fmt.Errorf("%w: duplicate stage %s", ErrInvalidPlan, st.Name)
		}
		index[st.Name] = i
	}

	graph := NewDependencyGraph()
	for _, st := range p.Stages {
		for _, dep := range st.DependsOn {
			if _, ok := index[dep]; !ok {
				return fmt.Errorf("%w: stage %s depends on unknown stage %s", ErrInvalidPlan, st.Name, dep)
			}
		}
		graph.AddStage(st.Name, st.DependsOn)
	}

	if _, err := graph.BuildInsertionOrder(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}

	for i, st := range p.Stages {
		for _, dep := range st.DependsOn {
			if index[dep] >= i {
				return fmt.Errorf("%w: stage %s runs before its dependency %s", ErrInvalidPlan, st.Name, dep)
			}
		}
	}

	return nil
}

func (p Plan) Names() []string {
	names := make([]string, len(p.Stages))
	for i, st := range p.Stages {
		names[i] = st.Name
	}
	return names
}
