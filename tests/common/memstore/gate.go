//go:build unit

package memstore

import (
	"context"
	"sync/atomic"

	"github.com/Fox-16s/reservat-io/internal/infra/query"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"
)

// Gate is a read store that, once armed, holds the next ListAll after it has
// read the rows. The load it belongs to is then older than anything committed
// before Release.
type Gate struct {
	*Store
	armed   atomic.Bool
	read    chan struct{}
	release chan struct{}
}

var _ queries.ReservationReadStore = (*Gate)(nil)

func NewGate(s *Store) *Gate {
	return &Gate{
		Store:   s,
		read:    make(chan struct{}),
		release: make(chan struct{}),
	}
}

// Arm makes the next ListAll block. A gate trips only once.
func (g *Gate) Arm() { g.armed.Store(true) }

// Read is closed when the held ListAll has taken its rows.
func (g *Gate) Read() <-chan struct{} { return g.read }

func (g *Gate) Release() { close(g.release) }

func (g *Gate) ListAll(ctx context.Context, db query.DBTX) ([]queries.ReservationRecord, error) {
	records, err := g.Store.ListAll(ctx, db)
	if g.armed.CompareAndSwap(true, false) {
		close(g.read)
		<-g.release
	}
	return records, err
}
