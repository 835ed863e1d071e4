package seeder

import (
	"context"
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Rana718/carga/internal/database/common"
	"github.com/Rana718/carga/internal/log"
)

// poolPolicy decides which records of a stage end up in its pool.
type poolPolicy int

const (
	// poolStored keeps only records the store accepted.
	poolStored poolPolicy = iota
	// poolStoredOrExisting also keeps reference rows rejected as duplicates,
	// since the row is already in the store.
	poolStoredOrExisting
)

// runStage persists every record yielded by records, tallies each outcome and
// appends the kept ones to pool in generation order. Generation stays on the
// calling goroutine; inserts fan out to at most cfg.Workers goroutines. A
// rejection never stops the stage. A generation or store error does.
func runStage[T Persistable](ctx context.Context, s *Seeder, pool *Pool[T], records iter.Seq2[T, error], policy poolPolicy) error {
	stage := pool.Name()

	type slot struct {
		rec  T
		keep bool
	}
	var slots []*slot

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	var genErr error
	for rec, err := range records {
		if err != nil {
			genErr = err
			break
		}
		if gctx.Err() != nil {
			break
		}

		sl := &slot{rec: rec}
		slots = append(slots, sl)
		g.Go(func() error {
			keep, err := s.persist(gctx, stage, sl.rec, policy)
			sl.keep = keep
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("stage %s: %w", stage, err)
	}
	if genErr != nil {
		return fmt.Errorf("stage %s: %w", stage, genErr)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("stage %s: %w", stage, err)
	}

	for _, sl := range slots {
		if sl.keep {
			pool.Add(sl.rec)
		}
	}
	return nil
}

// persist reports whether rec belongs in its pool. Only non-rejection errors are returned.
func (s *Seeder) persist(ctx context.Context, stage string, rec Persistable, policy poolPolicy) (bool, error) {
	err := s.loader.Persist(ctx, rec)
	if err == nil {
		s.tally.Record(stage, Succeeded)
		return true, nil
	}

	rej, ok := common.AsRejection(err)
	if !ok {
		return false, err
	}

	s.tally.Record(stage, Rejected)
	log.Log.WithFields(logrus.Fields{
		log.StageField: stage,
		log.TableField: rej.Table,
		"kind":         rej.Kind.String(),
	}).WithError(rej.Err).Warn("record rejected")

	return policy == poolStoredOrExisting && rej.Kind == common.RejectDuplicate, nil
}

// times yields n records built by gen.
func times[T any](n int, gen func() (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := 0; i < n; i++ {
			rec, err := gen()
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// each yields one record per parent.
func each[P, T any](parents []P, gen func(P) (T, error)) iter.Seq2[T, error] {
	return eachMany(parents, func(p P) ([]T, error) {
		rec, err := gen(p)
		return []T{rec}, err
	})
}

// eachMany yields every record gen builds for each parent.
func eachMany[P, T any](parents []P, gen func(P) ([]T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, p := range parents {
			recs, err := gen(p)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, rec := range recs {
				if !yield(rec, nil) {
					return
				}
			}
		}
	}
}

func one[T any](rec T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		yield(rec, nil)
	}
}
