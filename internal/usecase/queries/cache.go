package queries

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/Fox-16s/reservat-io/internal/infra/query"
	"github.com/Fox-16s/reservat-io/internal/pkg/errs"
	"github.com/Fox-16s/reservat-io/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type ReservationReadStore interface {
	ListAll(ctx context.Context, db query.DBTX) ([]ReservationRecord, error)
	FindByID(ctx context.Context, db query.DBTX, id uuid.UUID) (*ReservationRecord, error)
	PaymentsOf(ctx context.Context, db query.DBTX, reservationID uuid.UUID) ([]PaymentView, error)
}

// ReservationCache holds the full reservation list. It is only ever replaced
// wholesale by Refresh; there is no partial update.
type ReservationCache struct {
	uow       shared.UnitOfWork
	store     ReservationReadStore
	group     singleflight.Group
	requested atomic.Uint64

	mu      sync.RWMutex
	records []ReservationRecord
	loaded  bool
	stale   bool
	gen     uint64
}

func NewReservationCache(uow shared.UnitOfWork, store ReservationReadStore) *ReservationCache {
	return &ReservationCache{
		uow:   uow,
		store: store,
	}
}

// Refresh reloads every reservation in one read-only transaction and returns
// once a load that started after this call has been published. Concurrent
// calls share a load only when it began after they asked. On error the
// previous snapshot is kept.
func (c *ReservationCache) Refresh(ctx context.Context) error {
	want := c.requested.Add(1)
	for {
		_, err, _ := c.group.Do("reservations", func() (any, error) {
			return nil, c.load(ctx)
		})
		if err != nil {
			return err
		}
		if c.generation() >= want {
			return nil
		}
	}
}

func (c *ReservationCache) load(ctx context.Context) error {
	gen := c.requested.Load()

	var records []ReservationRecord
	err := c.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		var lerr error
		records, lerr = c.store.ListAll(ctx, db)
		return lerr
	})
	if err != nil {
		c.mu.Lock()
		c.stale = true
		c.mu.Unlock()
		return errs.Wrap(err, "refresh reservation cache")
	}
	sortRecords(records)

	c.mu.Lock()
	if gen > c.gen {
		c.records = records
		c.loaded = true
		c.stale = false
		c.gen = gen
	}
	c.mu.Unlock()

	slog.Debug("reservation cache refreshed", "count", len(records), "generation", gen)
	return nil
}

// Snapshot returns a copy of the cached records, loading them on first use
// and again after a failed refresh. If that reload fails too, the previous
// records are served.
func (c *ReservationCache) Snapshot(ctx context.Context) ([]ReservationRecord, error) {
	if out, ok := c.copyIfFresh(); ok {
		return out, nil
	}
	if err := c.Refresh(ctx); err != nil {
		out, loaded := c.copyIfLoaded()
		if !loaded {
			return nil, err
		}
		slog.Warn("serving previous reservation snapshot", "error", err)
		return out, nil
	}
	out, _ := c.copyIfLoaded()
	return out, nil
}

func (c *ReservationCache) generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

func (c *ReservationCache) copyIfFresh() ([]ReservationRecord, bool) {
	c.mu.RLock()
	stale := c.stale
	c.mu.RUnlock()
	if stale {
		return nil, false
	}
	return c.copyIfLoaded()
}

func (c *ReservationCache) copyIfLoaded() ([]ReservationRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, false
	}
	return append([]ReservationRecord(nil), c.records...), true
}

func sortRecords(records []ReservationRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].Reservation, records[j].Reservation
		if !a.Dates().Start().Equal(b.Dates().Start()) {
			return a.Dates().Start().Before(b.Dates().Start())
		}
		return a.CreatedAt().Before(b.CreatedAt())
	})
}
