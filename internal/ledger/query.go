package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/repository"
)

// StatusLabel is the operator-facing name of a package status.
func StatusLabel(status string) string {
	switch status {
	case repository.StatusPending:
		return "scanned"
	case repository.StatusCollected:
		return "batch closed"
	default:
		return status
	}
}

// List returns records in the date range, newest first. Empty Carrier or
// Status in the filter means all.
func (l *Ledger) List(ctx context.Context, filter repository.PackageFilter) ([]*repository.Package, error) {
	filter.From, filter.To = Day(filter.From), Day(filter.To)
	if filter.From.After(filter.To) {
		return nil, ErrInvalidRange
	}

	packages, err := l.packages.List(ctx, filter)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("list").Inc()
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return packages, nil
}

// Summary counts the records of one day per batch number, ascending. An empty
// carrier covers every carrier.
func (l *Ledger) Summary(ctx context.Context, day time.Time, c carrier.Carrier) ([]*repository.BatchCount, error) {
	counts, err := l.packages.CountByBatch(ctx, Day(day), string(c))
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("summary").Inc()
		return nil, fmt.Errorf("failed to summarize batches: %w", err)
	}
	if counts == nil {
		counts = []*repository.BatchCount{}
	}
	return counts, nil
}

type OpenBatch struct {
	Carrier  carrier.Carrier
	Day      time.Time
	Packages []*repository.Package
}

func (b *OpenBatch) Count() int {
	return len(b.Packages)
}

// BatchNumber is the number the pending packages share, or 0 when the batch
// is still empty.
func (b *OpenBatch) BatchNumber() int {
	if len(b.Packages) == 0 {
		return 0
	}
	return b.Packages[0].BatchNumber
}

// OpenBatch lists today's pending packages of the carrier in scan order.
func (l *Ledger) OpenBatch(ctx context.Context, c carrier.Carrier) (*OpenBatch, error) {
	if !c.IsSelected() {
		return nil, reject(ReasonNoCarrier, "", c, carrier.None)
	}

	batch := &OpenBatch{Carrier: c, Day: l.Today()}
	packages, err := l.packages.ListPending(ctx, string(c), batch.Day)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("open_batch").Inc()
		return nil, fmt.Errorf("failed to list open batch: %w", err)
	}
	batch.Packages = packages

	metrics.OpenBatchPackages.WithLabelValues(string(c)).Set(float64(batch.Count()))
	return batch, nil
}

type Verification struct {
	Package *repository.Package
	State   string
}

// Verify finds every record of a code across carriers and days, newest first.
func (l *Ledger) Verify(ctx context.Context, code string) ([]Verification, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, reject(ReasonEmptyCode, code, carrier.None, carrier.None)
	}

	packages, err := l.packages.GetByCode(ctx, code)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("verify").Inc()
		return nil, fmt.Errorf("failed to verify package: %w", err)
	}
	if len(packages) == 0 {
		l.logger.Debug("package not found", zap.String("code", code))
		return nil, fmt.Errorf("package %q: %w", code, repository.ErrObjectNotFound)
	}

	result := make([]Verification, len(packages))
	for i, pkg := range packages {
		result[i] = Verification{Package: pkg, State: StatusLabel(pkg.Status)}
	}
	return result, nil
}

// BatchHistory lists close, reopen and remove events of a carrier on a day.
func (l *Ledger) BatchHistory(ctx context.Context, c carrier.Carrier, day time.Time) ([]*repository.BatchEvent, error) {
	if !c.IsSelected() {
		return nil, reject(ReasonNoCarrier, "", c, carrier.None)
	}

	events, err := l.history.GetByDay(ctx, string(c), Day(day))
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("history").Inc()
		return nil, fmt.Errorf("failed to get batch history: %w", err)
	}
	return events, nil
}
