//go:generate mockgen -source ./ledger.go -destination=./mocks/ledger.go -package=mock_ledger
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/repository"
)

type PackageRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, pkg *repository.Package) error
	ExistsTx(ctx context.Context, tx db.Tx, carrier, code string, day time.Time) (bool, error)
	MaxBatchTx(ctx context.Context, tx db.Tx, carrier string, day time.Time, status string) (int, error)
	PendingBatchTx(ctx context.Context, tx db.Tx, carrier string, day time.Time) (int, error)
	SetBatchStatusTx(ctx context.Context, tx db.Tx, carrier string, day time.Time, batch int, from, to string) (int64, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Package, error)
	DeletePendingTx(ctx context.Context, tx db.Tx, id int64) (int64, error)
	List(ctx context.Context, filter repository.PackageFilter) ([]*repository.Package, error)
	ListPending(ctx context.Context, carrier string, day time.Time) ([]*repository.Package, error)
	CountByBatch(ctx context.Context, day time.Time, carrier string) ([]*repository.BatchCount, error)
	GetByCode(ctx context.Context, code string) ([]*repository.Package, error)
}

type HistoryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, event *repository.BatchEvent) error
	GetByDay(ctx context.Context, carrier string, day time.Time) ([]*repository.BatchEvent, error)
}

// Ledger is the only writer of package records. Every mutation runs in one
// transaction and either fully applies or leaves the store untouched.
type Ledger struct {
	db       db.DB
	packages PackageRepository
	history  HistoryRepository
	logger   *zap.Logger
	timeNow  func() time.Time
}

func New(database db.DB, packages PackageRepository, history HistoryRepository, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		db:       database,
		packages: packages,
		history:  history,
		logger:   logger,
		timeNow:  time.Now,
	}
}

// Day truncates t to its calendar date in t's own location and returns it as
// midnight UTC, the form stored in capture_date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (l *Ledger) Today() time.Time {
	return Day(l.timeNow())
}

type BatchResult struct {
	Carrier     carrier.Carrier
	Day         time.Time
	BatchNumber int
	Affected    int64
}

// Register validates a scanned code against the selected carrier and records
// it in the current open batch.
func (l *Ledger) Register(ctx context.Context, selected carrier.Carrier, code, operator string) (*repository.Package, error) {
	pkg, err := l.register(ctx, selected, code, operator)
	if err != nil {
		if rej, ok := AsRejection(err); ok {
			metrics.ScansRejectedTotal.WithLabelValues(string(rej.Reason)).Inc()
			l.logger.Warn("scan rejected",
				zap.String("carrier", selected.String()),
				zap.String("code", rej.Code),
				zap.String("reason", string(rej.Reason)))
			return nil, err
		}
		metrics.OperationErrorsTotal.WithLabelValues("register").Inc()
		l.logger.Error("failed to register package", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	metrics.PackagesRegisteredTotal.WithLabelValues(string(pkg.Carrier)).Inc()
	l.logger.Info("package registered",
		zap.Int64("id", pkg.ID),
		zap.String("carrier", pkg.Carrier),
		zap.String("code", pkg.Code),
		zap.Int("batch", pkg.BatchNumber))
	return pkg, nil
}

func (l *Ledger) register(ctx context.Context, selected carrier.Carrier, code, operator string) (*repository.Package, error) {
	code = strings.TrimSpace(code)
	switch {
	case !selected.IsSelected():
		return nil, reject(ReasonNoCarrier, code, selected, carrier.None)
	case code == "":
		return nil, reject(ReasonEmptyCode, code, selected, carrier.None)
	case !carrier.ValidShape(code):
		return nil, reject(ReasonInvalidFormat, code, selected, carrier.None)
	}

	match := carrier.Classify(code)
	switch {
	case match.IsInvoice():
		return nil, reject(ReasonInvoice, code, selected, match.Carrier)
	case !match.Recognized():
		return nil, reject(ReasonUnrecognized, code, selected, carrier.None)
	case match.Carrier != selected:
		return nil, reject(ReasonCarrierMismatch, code, selected, match.Carrier)
	}

	now := l.timeNow()
	pkg := &repository.Package{
		Carrier:     string(selected),
		Code:        code,
		CaptureDate: Day(now),
		CapturedAt:  now,
		Status:      repository.StatusPending,
	}
	if operator != "" {
		pkg.ScannedBy = &operator
	}

	err := l.inTx(ctx, func(tx db.Tx) error {
		exists, err := l.packages.ExistsTx(ctx, tx, pkg.Carrier, code, pkg.CaptureDate)
		if err != nil {
			return fmt.Errorf("failed to check duplicate: %w", err)
		}
		if exists {
			return reject(ReasonDuplicate, code, selected, match.Carrier)
		}

		last, err := l.packages.MaxBatchTx(ctx, tx, pkg.Carrier, pkg.CaptureDate, repository.StatusCollected)
		if err != nil {
			return fmt.Errorf("failed to compute batch number: %w", err)
		}
		pkg.BatchNumber = last + 1

		if err := l.packages.CreateTx(ctx, tx, pkg); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return reject(ReasonDuplicate, code, selected, match.Carrier)
			}
			return fmt.Errorf("failed to add package: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pkg, nil
}

// Close moves today's open batch of the carrier to collected.
func (l *Ledger) Close(ctx context.Context, selected carrier.Carrier, operator string) (*BatchResult, error) {
	if !selected.IsSelected() {
		return nil, reject(ReasonNoCarrier, "", selected, carrier.None)
	}

	res := &BatchResult{Carrier: selected, Day: l.Today()}
	err := l.inTx(ctx, func(tx db.Tx) error {
		batch, err := l.packages.PendingBatchTx(ctx, tx, string(selected), res.Day)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return ErrNothingPending
			}
			return fmt.Errorf("failed to find open batch: %w", err)
		}
		res.BatchNumber = batch

		res.Affected, err = l.packages.SetBatchStatusTx(ctx, tx, string(selected), res.Day, batch,
			repository.StatusPending, repository.StatusCollected)
		if err != nil {
			return fmt.Errorf("failed to close batch: %w", err)
		}
		if res.Affected == 0 {
			return ErrNothingPending
		}

		return l.recordTx(ctx, tx, res, repository.BatchClosed, operator)
	})
	if err != nil {
		return nil, l.lifecycleFailure("close", selected, err)
	}

	metrics.BatchesClosedTotal.Inc()
	l.logger.Info("batch closed",
		zap.String("carrier", string(selected)),
		zap.Int("batch", res.BatchNumber),
		zap.Int64("packages", res.Affected))
	return res, nil
}

// Reopen moves the most recently closed batch of today back to pending.
func (l *Ledger) Reopen(ctx context.Context, selected carrier.Carrier, operator string) (*BatchResult, error) {
	if !selected.IsSelected() {
		return nil, reject(ReasonNoCarrier, "", selected, carrier.None)
	}

	res := &BatchResult{Carrier: selected, Day: l.Today()}
	err := l.inTx(ctx, func(tx db.Tx) error {
		batch, err := l.packages.MaxBatchTx(ctx, tx, string(selected), res.Day, repository.StatusCollected)
		if err != nil {
			return fmt.Errorf("failed to find last closed batch: %w", err)
		}
		if batch == 0 {
			return ErrNothingCollected
		}
		res.BatchNumber = batch

		res.Affected, err = l.packages.SetBatchStatusTx(ctx, tx, string(selected), res.Day, batch,
			repository.StatusCollected, repository.StatusPending)
		if err != nil {
			return fmt.Errorf("failed to reopen batch: %w", err)
		}
		if res.Affected == 0 {
			return ErrNothingCollected
		}

		return l.recordTx(ctx, tx, res, repository.BatchReopened, operator)
	})
	if err != nil {
		return nil, l.lifecycleFailure("reopen", selected, err)
	}

	metrics.BatchesReopenedTotal.Inc()
	l.logger.Info("batch reopened",
		zap.String("carrier", string(selected)),
		zap.Int("batch", res.BatchNumber),
		zap.Int64("packages", res.Affected))
	return res, nil
}

// Remove deletes one package scanned today while its batch is still pending.
func (l *Ledger) Remove(ctx context.Context, id int64, operator string) (*repository.Package, error) {
	var removed *repository.Package
	err := l.inTx(ctx, func(tx db.Tx) error {
		pkg, err := l.packages.GetByIDTx(ctx, tx, id)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return fmt.Errorf("package %d: %w", id, err)
			}
			return fmt.Errorf("failed to get package: %w", err)
		}
		if pkg.Status != repository.StatusPending {
			return ErrNotPending
		}
		if !pkg.CaptureDate.Equal(l.Today()) {
			return ErrNotToday
		}

		rows, err := l.packages.DeletePendingTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to remove package: %w", err)
		}
		if rows == 0 {
			return ErrNotPending
		}
		removed = pkg

		res := &BatchResult{
			Carrier:     carrier.Carrier(pkg.Carrier),
			Day:         pkg.CaptureDate,
			BatchNumber: pkg.BatchNumber,
			Affected:    rows,
		}
		return l.recordTx(ctx, tx, res, repository.BatchRemoved, operator)
	})
	if err != nil {
		if !errors.Is(err, ErrNotPending) && !errors.Is(err, ErrNotToday) && !errors.Is(err, repository.ErrObjectNotFound) {
			metrics.OperationErrorsTotal.WithLabelValues("remove").Inc()
			l.logger.Error("failed to remove package", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}

	metrics.PackagesRemovedTotal.Inc()
	l.logger.Info("package removed",
		zap.Int64("id", id),
		zap.String("carrier", removed.Carrier),
		zap.String("code", removed.Code))
	return removed, nil
}

func (l *Ledger) recordTx(ctx context.Context, tx db.Tx, res *BatchResult, action repository.BatchAction, operator string) error {
	event := &repository.BatchEvent{
		Carrier:     string(res.Carrier),
		CaptureDate: res.Day,
		BatchNumber: res.BatchNumber,
		Action:      action,
		Affected:    res.Affected,
		ChangedAt:   l.timeNow(),
	}
	if operator != "" {
		event.Operator = &operator
	}
	if err := l.history.CreateTx(ctx, tx, event); err != nil {
		return fmt.Errorf("failed to add batch history entry: %w", err)
	}
	return nil
}

func (l *Ledger) lifecycleFailure(op string, selected carrier.Carrier, err error) error {
	if IsWarning(err) {
		l.logger.Warn(err.Error(), zap.String("carrier", string(selected)))
		return err
	}
	metrics.OperationErrorsTotal.WithLabelValues(op).Inc()
	l.logger.Error("failed to "+op+" batch", zap.String("carrier", string(selected)), zap.Error(err))
	return err
}

func (l *Ledger) inTx(ctx context.Context, fn func(tx db.Tx) error) error {
	tx, err := l.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			l.logger.Error("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
