package seeder

import (
	"context"
	"time"

	"github.com/Rana718/carga/internal/database/common"
	"github.com/Rana718/carga/internal/metrics"
)

// Store is what the seeder needs from a database adapter.
type Store interface {
	Insert(ctx context.Context, table string, columns []string, values []any) error
	Count(ctx context.Context, table string) (int, error)
}

// Loader submits one record per INSERT. It never retries or batches.
type Loader struct {
	store   Store
	metrics *metrics.Metrics
}

func NewLoader(store Store, m *metrics.Metrics) *Loader {
	return &Loader{store: store, metrics: m}
}

// Persist stores rec. Store-side refusals come back as *common.RejectError;
// anything else is fatal for the run.
func (l *Loader) Persist(ctx context.Context, rec Persistable) error {
	row, err := RowOf(rec)
	if err != nil {
		return err
	}

	start := time.Now()
	err = l.store.Insert(ctx, row.Table, row.Columns, row.Values)
	took := time.Since(start)

	switch _, rejected := common.AsRejection(err); {
	case err == nil:
		l.metrics.ObserveInsert(row.Table, metrics.OutcomeSucceeded, took)
	case rejected:
		l.metrics.ObserveInsert(row.Table, metrics.OutcomeRejected, took)
	}
	return err
}
