package postgresql

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/repository"
)

type HistoryRepo struct {
	db db.DB
}

func NewHistoryRepo(db db.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) CreateTx(ctx context.Context, tx db.Tx, event *repository.BatchEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	_, err := tx.Exec(ctx, `
        INSERT INTO batch_history (
            id, carrier, capture_date, batch_number, action, affected, operator, changed_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, event.ID, event.Carrier, event.CaptureDate, event.BatchNumber, event.Action, event.Affected, event.Operator, event.ChangedAt)
	return err
}

func (r *HistoryRepo) GetByDay(ctx context.Context, carrier string, day time.Time) ([]*repository.BatchEvent, error) {
	var events []*repository.BatchEvent
	err := r.db.Select(ctx, &events, `
        SELECT id, carrier, capture_date, batch_number, action, affected, operator, changed_at
        FROM batch_history
        WHERE carrier = $1 AND capture_date = $2
        ORDER BY changed_at ASC
    `, carrier, day)
	return events, err
}
