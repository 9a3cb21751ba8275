package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound = errors.New("not found")
	ErrDuplicate      = errors.New("duplicate")
)

const (
	StatusPending   = "pending"
	StatusCollected = "collected"
)

type Package struct {
	ID          int64     `db:"id"`
	Carrier     string    `db:"carrier"`
	Code        string    `db:"code"`
	CaptureDate time.Time `db:"capture_date"`
	CapturedAt  time.Time `db:"captured_at"`
	Status      string    `db:"status"`
	BatchNumber int       `db:"batch_number"`
	ScannedBy   *string   `db:"scanned_by"`
}

type PackageFilter struct {
	From    time.Time
	To      time.Time
	Carrier string
	Status  string
}

type BatchCount struct {
	BatchNumber int `db:"batch_number"`
	Count       int `db:"count"`
}

type BatchAction string

const (
	BatchClosed   BatchAction = "closed"
	BatchReopened BatchAction = "reopened"
	BatchRemoved  BatchAction = "removed"
)

type BatchEvent struct {
	ID          uuid.UUID   `db:"id"`
	Carrier     string      `db:"carrier"`
	CaptureDate time.Time   `db:"capture_date"`
	BatchNumber int         `db:"batch_number"`
	Action      BatchAction `db:"action"`
	Affected    int64       `db:"affected"`
	Operator    *string     `db:"operator"`
	ChangedAt   time.Time   `db:"changed_at"`
}

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Role     string `db:"role"`
}
