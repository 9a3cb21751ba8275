package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/repository"
)

type memLedger struct {
	*Ledger
	packages *memPackages
	history  *memHistory
	clock    time.Time
}

func newMemLedger(t *testing.T) *memLedger {
	t.Helper()
	database := newMemDB()
	m := &memLedger{
		packages: &memPackages{db: database},
		history:  &memHistory{db: database},
		clock:    time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	m.Ledger = New(database, m.packages, m.history, nil)
	m.Ledger.timeNow = func() time.Time { return m.clock }
	return m
}

// scan registers a code one minute after the previous scan.
func (m *memLedger) scan(t *testing.T, c carrier.Carrier, code string) *repository.Package {
	t.Helper()
	m.clock = m.clock.Add(time.Minute)
	pkg, err := m.Register(context.Background(), c, code, "operator")
	require.NoError(t, err)
	return pkg
}

func (m *memLedger) statuses() map[string]string {
	out := map[string]string{}
	for _, p := range m.packages.all() {
		out[p.Code] = p.Status
	}
	return out
}

func TestLedger_EndToEnd(t *testing.T) {
	ctx := context.Background()
	l := newMemLedger(t)

	first := l.scan(t, carrier.Shein, "GC0000000000000001")
	assert.Equal(t, 1, first.BatchNumber)
	assert.Equal(t, repository.StatusPending, first.Status)

	open, err := l.OpenBatch(ctx, carrier.Shein)
	require.NoError(t, err)
	assert.Equal(t, 1, open.Count())

	closed, err := l.Close(ctx, carrier.Shein, "operator")
	require.NoError(t, err)
	assert.Equal(t, 1, closed.BatchNumber)
	assert.Equal(t, int64(1), closed.Affected)

	second := l.scan(t, carrier.Shein, "GC0000000000000002")
	assert.Equal(t, 2, second.BatchNumber)

	reopened, err := l.Reopen(ctx, carrier.Shein, "operator")
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.BatchNumber)
	assert.Equal(t, int64(1), reopened.Affected)

	for _, p := range l.packages.all() {
		assert.Equal(t, repository.StatusPending, p.Status, p.Code)
	}
	byCode := map[string]int{}
	for _, p := range l.packages.all() {
		byCode[p.Code] = p.BatchNumber
	}
	assert.Equal(t, map[string]int{"GC0000000000000001": 1, "GC0000000000000002": 2}, byCode)
}

func TestLedger_BatchNumbering(t *testing.T) {
	ctx := context.Background()
	l := newMemLedger(t)

	for _, code := range []string{"BR1234567890120", "BR1234567890121", "BR1234567890122"} {
		assert.Equal(t, 1, l.scan(t, carrier.Shopee, code).BatchNumber)
	}

	res, err := l.Close(ctx, carrier.Shopee, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Affected)

	assert.Equal(t, 2, l.scan(t, carrier.Shopee, "BR1234567890123").BatchNumber)

	// batches are scoped per carrier
	assert.Equal(t, 1, l.scan(t, carrier.MercadoLivre, "44123456789").BatchNumber)
}

func TestLedger_CloseReopenRoundTrip(t *testing.T) {
	ctx := context.Background()
	l := newMemLedger(t)

	l.scan(t, carrier.MercadoLivre, "44000000001")
	l.scan(t, carrier.MercadoLivre, "44000000002")

	for i := 0; i < 3; i++ {
		closed, err := l.Close(ctx, carrier.MercadoLivre, "")
		require.NoError(t, err)
		assert.Equal(t, 1, closed.BatchNumber)
		assert.Equal(t, int64(2), closed.Affected)

		reopened, err := l.Reopen(ctx, carrier.MercadoLivre, "")
		require.NoError(t, err)
		assert.Equal(t, 1, reopened.BatchNumber)
		assert.Equal(t, int64(2), reopened.Affected)
	}

	assert.Equal(t, map[string]string{
		"44000000001": repository.StatusPending,
		"44000000002": repository.StatusPending,
	}, l.statuses())
}

func TestLedger_ReopenTargetsLatestClosedBatch(t *testing.T) {
	ctx := context.Background()
	l := newMemLedger(t)

	l.scan(t, carrier.Shein, "GC0000000000000001")
	_, err := l.Close(ctx, carrier.Shein, "")
	require.NoError(t, err)
	l.scan(t, carrier.Shein, "GC0000000000000002")
	_, err = l.Close(ctx, carrier.Shein, "")
	require.NoError(t, err)

	res, err := l.Reopen(ctx, carrier.Shein, "")
	require.NoError(t, err)
	assert.Equal(t, 2, res.BatchNumber)
	assert.Equal(t, map[string]string{
		"GC0000000000000001": repository.StatusCollected,
		"GC0000000000000002": repository.StatusPending,
	}, l.statuses())
}

func TestLedger_LifecycleWarnings(t *testing.T) {
	ctx := context.Background()
	l := newMemLedger(t)

	_, err := l.Close(ctx, carrier.Shein, "")
	assert.ErrorIs(t, err, ErrNothingPending)
	assert.True(t, IsWarning(err))

	_, err = l.Reopen(ctx, carrier.Shein, "")
	assert.ErrorIs(t, err, ErrNothingCollected)
	assert.True(t, IsWarning(err))

	_, err = l.Close(ctx, carrier.None, "")
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonNoCarrier, rej.Reason)
	assert.False(t, IsWarning(err))
}

func TestLedger_CloseOnlyTouchesToday(t *testing.T) {
	ctx := context.Background()
	l := newMemLedger(t)

	l.scan(t, carrier.Shein, "GC0000000000000001")
	l.clock = l.clock.Add(24 * time.Hour)

	_, err := l.Close(ctx, carrier.Shein, "")
	assert.ErrorIs(t, err, ErrNothingPending)
	assert.Equal(t, repository.StatusPending, l.statuses()["GC0000000000000001"])
}

func TestLedger_Duplicate(t *testing.T) {
	ctx := context.Background()
	l := newMemLedger(t)
	before := testutil.ToFloat64(metrics.ScansRejectedTotal.WithLabelValues(string(ReasonDuplicate)))

	l.scan(t, carrier.Shein, "GC0000000000000001")

	_, err := l.Register(ctx, carrier.Shein, " GC0000000000000001 ", "operator")
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, ReasonDuplicate, rej.Reason)
	assert.Equal(t, CategoryDuplicate, rej.Category())
	assert.Len(t, l.packages.all(), 1)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ScansRejectedTotal.WithLabelValues(string(ReasonDuplicate))))

	t.Run("still a duplicate after the batch is closed", func(t *testing.T) {
		_, err := l.Close(ctx, carrier.Shein, "")
		require.NoError(t, err)

		_, err = l.Register(ctx, carrier.Shein, "GC0000000000000001", "")
		rej, ok := AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, ReasonDuplicate, rej.Reason)
	})

	t.Run("accepted again on another day", func(t *testing.T) {
		l.clock = l.clock.Add(24 * time.Hour)
		pkg := l.scan(t, carrier.Shein, "GC0000000000000001")
		assert.Equal(t, 1, pkg.BatchNumber)
		assert.Len(t, l.packages.all(), 2)
	})
}

func TestLedger_RegisterRejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		selected carrier.Carrier
		code     string
		reason   Reason
		category Category
		detected carrier.Carrier
	}{
		{name: "no carrier wins over empty code", selected: carrier.None, code: "", reason: ReasonNoCarrier, category: CategoryValidation},
		{name: "empty after trim", selected: carrier.Shein, code: "   ", reason: ReasonEmptyCode, category: CategoryValidation},
		{name: "bad shape", selected: carrier.Shein, code: "XYZ", reason: ReasonInvalidFormat, category: CategoryValidation},
		{name: "invoice", selected: carrier.Shein, code: "123456789012345", reason: ReasonInvoice, category: CategoryClassification, detected: carrier.Invoice},
		{name: "invoice whatever the carrier", selected: carrier.MercadoLivre, code: "441234567890123", reason: ReasonInvoice, category: CategoryClassification, detected: carrier.Invoice},
		{name: "shape without rule", selected: carrier.Shopee, code: "BR123456789012_", reason: ReasonUnrecognized, category: CategoryClassification},
		{name: "other carrier", selected: carrier.Shopee, code: "GC0000000000000001", reason: ReasonCarrierMismatch, category: CategoryClassification, detected: carrier.Shein},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := newMemLedger(t)

			pkg, err := l.Register(ctx, tc.selected, tc.code, "")
			assert.Nil(t, pkg)
			rej, ok := AsRejection(err)
			require.True(t, ok, "expected rejection, got %v", err)
			assert.Equal(t, tc.reason, rej.Reason)
			assert.Equal(t, tc.category, rej.Category())
			assert.Equal(t, tc.detected, rej.Detected)
			assert.Empty(t, l.packages.all())
		})
	}

	t.Run("mismatch message names the detected carrier", func(t *testing.T) {
		l := newMemLedger(t)
		_, err := l.Register(ctx, carrier.Shopee, "44123456789", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Mercado Livre")
	})
}

func TestLedger_Remove(t *testing.T) {
	ctx := context.Background()
	l := newMemLedger(t)

	keep := l.scan(t, carrier.Shein, "GC0000000000000001")
	drop := l.scan(t, carrier.Shein, "GC0000000000000002")

	removed, err := l.Remove(ctx, drop.ID, "operator")
	require.NoError(t, err)
	assert.Equal(t, drop.Code, removed.Code)
	assert.Len(t, l.packages.all(), 1)

	_, err = l.Remove(ctx, drop.ID, "operator")
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)

	_, err = l.Close(ctx, carrier.Shein, "operator")
	require.NoError(t, err)

	_, err = l.Remove(ctx, keep.ID, "operator")
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Len(t, l.packages.all(), 1)

	events, err := l.BatchHistory(ctx, carrier.Shein, l.clock)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, repository.BatchRemoved, events[0].Action)
	assert.Equal(t, repository.BatchClosed, events[1].Action)
	require.NotNil(t, events[1].Operator)
	assert.Equal(t, "operator", *events[1].Operator)
}

func TestLedger_RemoveOnlyTouchesToday(t *testing.T) {
	ctx := context.Background()
	l := newMemLedger(t)

	old := l.scan(t, carrier.Shein, "GC0000000000000001")
	l.clock = l.clock.Add(24 * time.Hour)

	_, err := l.Remove(ctx, old.ID, "operator")
	assert.ErrorIs(t, err, ErrNotToday)
	assert.Len(t, l.packages.all(), 1)
	assert.Equal(t, repository.StatusPending, l.statuses()["GC0000000000000001"])
}

func TestLedger_Queries(t *testing.T) {
	ctx := context.Background()
	l := newMemLedger(t)

	t.Run("summary of an empty day", func(t *testing.T) {
		counts, err := l.Summary(ctx, l.clock, carrier.None)
		require.NoError(t, err)
		assert.NotNil(t, counts)
		assert.Empty(t, counts)
	})

	l.scan(t, carrier.Shein, "GC0000000000000001")
	l.scan(t, carrier.Shein, "GC0000000000000002")
	_, err := l.Close(ctx, carrier.Shein, "")
	require.NoError(t, err)
	l.scan(t, carrier.Shein, "GC0000000000000003")
	l.scan(t, carrier.Shopee, "BR1234567890123")

	t.Run("summary per batch", func(t *testing.T) {
		counts, err := l.Summary(ctx, l.clock, carrier.Shein)
		require.NoError(t, err)
		assert.Equal(t, []*repository.BatchCount{
			{BatchNumber: 1, Count: 2},
			{BatchNumber: 2, Count: 1},
		}, counts)
	})

	t.Run("open batch in scan order", func(t *testing.T) {
		open, err := l.OpenBatch(ctx, carrier.Shein)
		require.NoError(t, err)
		require.Equal(t, 1, open.Count())
		assert.Equal(t, 2, open.BatchNumber())
		assert.Equal(t, "GC0000000000000003", open.Packages[0].Code)
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.OpenBatchPackages.WithLabelValues("SHEIN")))
	})

	t.Run("list by status", func(t *testing.T) {
		packages, err := l.List(ctx, repository.PackageFilter{
			From:    l.clock,
			To:      l.clock,
			Carrier: string(carrier.Shein),
			Status:  repository.StatusCollected,
		})
		require.NoError(t, err)
		require.Len(t, packages, 2)
		assert.Equal(t, "GC0000000000000002", packages[0].Code)
	})

	t.Run("list with inverted range", func(t *testing.T) {
		_, err := l.List(ctx, repository.PackageFilter{From: l.clock, To: l.clock.Add(-48 * time.Hour)})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("verify", func(t *testing.T) {
		found, err := l.Verify(ctx, "GC0000000000000001")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "batch closed", found[0].State)

		found, err = l.Verify(ctx, "BR1234567890123")
		require.NoError(t, err)
		assert.Equal(t, "scanned", found[0].State)

		_, err = l.Verify(ctx, "GC9999999999999999")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}
