package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/repository"
)

const packageColumns = "id, carrier, code, capture_date, captured_at, status, batch_number, scanned_by"

type PackageRepo struct {
	db db.DB
}

func NewPackageRepo(db db.DB) *PackageRepo {
	return &PackageRepo{db: db}
}

func (r *PackageRepo) CreateTx(ctx context.Context, tx db.Tx, pkg *repository.Package) error {
	err := tx.Get(ctx, &pkg.ID, `
        INSERT INTO packages (
            carrier, code, capture_date, captured_at, status, batch_number, scanned_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, pkg.Carrier, pkg.Code, pkg.CaptureDate, pkg.CapturedAt, pkg.Status, pkg.BatchNumber, pkg.ScannedBy)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PackageRepo) ExistsTx(ctx context.Context, tx db.Tx, carrier, code string, day time.Time) (bool, error) {
	var exists bool
	err := tx.Get(ctx, &exists, `
        SELECT EXISTS (
            SELECT 1 FROM packages
            WHERE carrier = $1 AND code = $2 AND capture_date = $3
        )
    `, carrier, code, day)
	return exists, err
}

// MaxBatchTx returns the highest batch number with the given status for a
// carrier and day, or 0 when there is none.
func (r *PackageRepo) MaxBatchTx(ctx context.Context, tx db.Tx, carrier string, day time.Time, status string) (int, error) {
	var batch int
	err := tx.Get(ctx, &batch, `
        SELECT COALESCE(MAX(batch_number), 0) FROM packages
        WHERE carrier = $1 AND capture_date = $2 AND status = $3
    `, carrier, day, status)
	return batch, err
}

func (r *PackageRepo) PendingBatchTx(ctx context.Context, tx db.Tx, carrier string, day time.Time) (int, error) {
	var batch int
	err := tx.Get(ctx, &batch, `
        SELECT batch_number FROM packages
        WHERE carrier = $1 AND capture_date = $2 AND status = $3
        ORDER BY batch_number ASC
        LIMIT 1
    `, carrier, day, repository.StatusPending)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, repository.ErrObjectNotFound
		}
		return 0, err
	}
	return batch, nil
}

// SetBatchStatusTx moves every record of one batch from one status to another
// in a single statement and reports how many rows changed.
func (r *PackageRepo) SetBatchStatusTx(ctx context.Context, tx db.Tx, carrier string, day time.Time, batch int, from, to string) (int64, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE packages
        SET status = $1
        WHERE carrier = $2 AND capture_date = $3 AND status = $4 AND batch_number = $5
    `, to, carrier, day, from, batch)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PackageRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Package, error) {
	var pkg repository.Package
	err := tx.Get(ctx, &pkg, "SELECT "+packageColumns+" FROM packages WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepo) DeletePendingTx(ctx context.Context, tx db.Tx, id int64) (int64, error) {
	tag, err := tx.Exec(ctx, "DELETE FROM packages WHERE id = $1 AND status = $2", id, repository.StatusPending)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PackageRepo) List(ctx context.Context, filter repository.PackageFilter) ([]*repository.Package, error) {
	query := "SELECT " + packageColumns + " FROM packages WHERE capture_date BETWEEN $1 AND $2"
	args := []interface{}{filter.From, filter.To}

	if filter.Carrier != "" {
		args = append(args, filter.Carrier)
		query += fmt.Sprintf(" AND carrier = $%d", len(args))
	}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY capture_date DESC, captured_at DESC, id DESC"

	var packages []*repository.Package
	if err := r.db.Select(ctx, &packages, query, args...); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *PackageRepo) ListPending(ctx context.Context, carrier string, day time.Time) ([]*repository.Package, error) {
	var packages []*repository.Package
	err := r.db.Select(ctx, &packages, `
        SELECT `+packageColumns+` FROM packages
        WHERE carrier = $1 AND capture_date = $2 AND status = $3
        ORDER BY captured_at ASC, id ASC
    `, carrier, day, repository.StatusPending)
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *PackageRepo) CountByBatch(ctx context.Context, day time.Time, carrier string) ([]*repository.BatchCount, error) {
	query := "SELECT batch_number, COUNT(*) AS count FROM packages WHERE capture_date = $1"
	args := []interface{}{day}

	if carrier != "" {
		query += " AND carrier = $2"
		args = append(args, carrier)
	}

	query += " GROUP BY batch_number ORDER BY batch_number ASC"

	var counts []*repository.BatchCount
	if err := r.db.Select(ctx, &counts, query, args...); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *PackageRepo) GetByCode(ctx context.Context, code string) ([]*repository.Package, error) {
	var packages []*repository.Package
	err := r.db.Select(ctx, &packages, `
        SELECT `+packageColumns+` FROM packages
        WHERE code = $1
        ORDER BY capture_date DESC, captured_at DESC
    `, code)
	if err != nil {
		return nil, err
	}
	return packages, nil
}
