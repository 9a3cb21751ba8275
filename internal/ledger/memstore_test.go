package ledger

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/repository"
)

var errNoSQL = errors.New("memory store does not run SQL")

type memState struct {
	packages []repository.Package
	events   []repository.BatchEvent
	nextID   int64
}

func (s *memState) clone() *memState {
	return &memState{
		packages: append([]repository.Package(nil), s.packages...),
		events:   append([]repository.BatchEvent(nil), s.events...),
		nextID:   s.nextID,
	}
}

// memDB keeps committed state in memory. A transaction works on a copy that
// replaces the committed state on Commit.
type memDB struct {
	mu        sync.Mutex
	committed *memState
}

func newMemDB() *memDB {
	return &memDB{committed: &memState{}}
}

func (d *memDB) snapshot() *memState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.committed.clone()
}

func (d *memDB) Get(context.Context, interface{}, string, ...interface{}) error {
	return errNoSQL
}

func (d *memDB) Select(context.Context, interface{}, string, ...interface{}) error {
	return errNoSQL
}

func (d *memDB) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, errNoSQL
}

func (d *memDB) ExecQueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

func (d *memDB) BeginTx(context.Context) (db.Tx, error) {
	return &memTx{db: d, state: d.snapshot()}, nil
}

type memTx struct {
	db    *memDB
	state *memState
}

func (t *memTx) Commit(context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	t.db.committed = t.state
	return nil
}

func (t *memTx) Rollback(context.Context) error {
	return nil
}

func (t *memTx) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, errNoSQL
}

func (t *memTx) Get(context.Context, interface{}, string, ...interface{}) error {
	return errNoSQL
}

func (t *memTx) Select(context.Context, interface{}, string, ...interface{}) error {
	return errNoSQL
}

func state(tx db.Tx) *memState {
	return tx.(*memTx).state
}

type memPackages struct {
	db *memDB
}

func (r *memPackages) CreateTx(_ context.Context, tx db.Tx, pkg *repository.Package) error {
	s := state(tx)
	for _, p := range s.packages {
		if p.Carrier == pkg.Carrier && p.Code == pkg.Code && p.CaptureDate.Equal(pkg.CaptureDate) {
			return repository.ErrDuplicate
		}
	}
	s.nextID++
	pkg.ID = s.nextID
	s.packages = append(s.packages, *pkg)
	return nil
}

func (r *memPackages) ExistsTx(_ context.Context, tx db.Tx, carrier, code string, day time.Time) (bool, error) {
	for _, p := range state(tx).packages {
		if p.Carrier == carrier && p.Code == code && p.CaptureDate.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memPackages) MaxBatchTx(_ context.Context, tx db.Tx, carrier string, day time.Time, status string) (int, error) {
	highest := 0
	for _, p := range state(tx).packages {
		if p.Carrier == carrier && p.CaptureDate.Equal(day) && p.Status == status && p.BatchNumber > highest {
			highest = p.BatchNumber
		}
	}
	return highest, nil
}

func (r *memPackages) PendingBatchTx(_ context.Context, tx db.Tx, carrier string, day time.Time) (int, error) {
	batch := 0
	for _, p := range state(tx).packages {
		if p.Carrier == carrier && p.CaptureDate.Equal(day) && p.Status == repository.StatusPending &&
			(batch == 0 || p.BatchNumber < batch) {
			batch = p.BatchNumber
		}
	}
	if batch == 0 {
		return 0, repository.ErrObjectNotFound
	}
	return batch, nil
}

func (r *memPackages) SetBatchStatusTx(_ context.Context, tx db.Tx, carrier string, day time.Time, batch int, from, to string) (int64, error) {
	s := state(tx)
	var n int64
	for i := range s.packages {
		p := &s.packages[i]
		if p.Carrier == carrier && p.CaptureDate.Equal(day) && p.Status == from && p.BatchNumber == batch {
			p.Status = to
			n++
		}
	}
	return n, nil
}

func (r *memPackages) GetByIDTx(_ context.Context, tx db.Tx, id int64) (*repository.Package, error) {
	for _, p := range state(tx).packages {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, repository.ErrObjectNotFound
}

func (r *memPackages) DeletePendingTx(_ context.Context, tx db.Tx, id int64) (int64, error) {
	s := state(tx)
	for i, p := range s.packages {
		if p.ID == id && p.Status == repository.StatusPending {
			s.packages = append(s.packages[:i], s.packages[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memPackages) List(_ context.Context, filter repository.PackageFilter) ([]*repository.Package, error) {
	var out []*repository.Package
	for _, p := range r.db.snapshot().packages {
		if p.CaptureDate.Before(filter.From) || p.CaptureDate.After(filter.To) {
			continue
		}
		if filter.Carrier != "" && p.Carrier != filter.Carrier {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		p := p
		out = append(out, &p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CapturedAt.After(out[j].CapturedAt)
	})
	return out, nil
}

func (r *memPackages) ListPending(_ context.Context, carrier string, day time.Time) ([]*repository.Package, error) {
	var out []*repository.Package
	for _, p := range r.db.snapshot().packages {
		if p.Carrier == carrier && p.CaptureDate.Equal(day) && p.Status == repository.StatusPending {
			p := p
			out = append(out, &p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CapturedAt.Before(out[j].CapturedAt)
	})
	return out, nil
}

func (r *memPackages) CountByBatch(_ context.Context, day time.Time, carrier string) ([]*repository.BatchCount, error) {
	counts := map[int]int{}
	for _, p := range r.db.snapshot().packages {
		if p.CaptureDate.Equal(day) && (carrier == "" || p.Carrier == carrier) {
			counts[p.BatchNumber]++
		}
	}
	var out []*repository.BatchCount
	for batch, n := range counts {
		out = append(out, &repository.BatchCount{BatchNumber: batch, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BatchNumber < out[j].BatchNumber
	})
	return out, nil
}

func (r *memPackages) GetByCode(_ context.Context, code string) ([]*repository.Package, error) {
	var out []*repository.Package
	for _, p := range r.db.snapshot().packages {
		if p.Code == code {
			p := p
			out = append(out, &p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CapturedAt.After(out[j].CapturedAt)
	})
	return out, nil
}

func (r *memPackages) all() []repository.Package {
	return r.db.snapshot().packages
}

type memHistory struct {
	db *memDB
}

func (r *memHistory) CreateTx(_ context.Context, tx db.Tx, event *repository.BatchEvent) error {
	s := state(tx)
	s.events = append(s.events, *event)
	return nil
}

func (r *memHistory) GetByDay(_ context.Context, carrier string, day time.Time) ([]*repository.BatchEvent, error) {
	var out []*repository.BatchEvent
	for _, e := range r.db.snapshot().events {
		if e.Carrier == carrier && e.CaptureDate.Equal(day) {
			e := e
			out = append(out, &e)
		}
	}
	return out, nil
}
