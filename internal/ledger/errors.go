package ledger

import (
	"errors"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/carrier"
)

var (
	ErrNothingPending   = errors.New("no pending packages to close today")
	ErrNothingCollected = errors.New("no closed batch to reopen today")
	ErrNotPending       = errors.New("only packages of an open batch can be removed")
	ErrNotToday         = errors.New("only packages scanned today can be removed")
	ErrInvalidRange     = errors.New("start date is after end date")
)

// IsWarning reports whether err is a lifecycle no-op rather than a failure.
func IsWarning(err error) bool {
	return errors.Is(err, ErrNothingPending) || errors.Is(err, ErrNothingCollected)
}

type Reason string

const (
	ReasonNoCarrier       Reason = "no_carrier"
	ReasonEmptyCode       Reason = "empty_code"
	ReasonInvalidFormat   Reason = "invalid_format"
	ReasonInvoice         Reason = "is_invoice_not_package"
	ReasonUnrecognized    Reason = "unrecognized_barcode"
	ReasonCarrierMismatch Reason = "carrier_mismatch"
	ReasonDuplicate       Reason = "duplicate"
)

type Category string

const (
	CategoryValidation     Category = "validation"
	CategoryClassification Category = "classification"
	CategoryDuplicate      Category = "duplicate"
)

// RejectionError is returned when a scan or a batch command is refused before
// anything is written.
type RejectionError struct {
	Reason   Reason
	Code     string
	Selected carrier.Carrier
	Detected carrier.Carrier
}

func (e *RejectionError) Error() string {
	switch e.Reason {
	case ReasonNoCarrier:
		return "no carrier selected"
	case ReasonEmptyCode:
		return "package code is empty"
	case ReasonInvalidFormat:
		return fmt.Sprintf("invalid code format: %q", e.Code)
	case ReasonInvoice:
		return fmt.Sprintf("code %q is an invoice (%s), not a package", e.Code, carrier.Invoice)
	case ReasonUnrecognized:
		return fmt.Sprintf("unrecognized barcode: %q", e.Code)
	case ReasonCarrierMismatch:
		return fmt.Sprintf("code %q belongs to %s, not %s", e.Code, e.Detected, e.Selected)
	case ReasonDuplicate:
		return fmt.Sprintf("package %q already registered for %s today", e.Code, e.Selected)
	default:
		return string(e.Reason)
	}
}

func (e *RejectionError) Category() Category {
	switch e.Reason {
	case ReasonInvoice, ReasonUnrecognized, ReasonCarrierMismatch:
		return CategoryClassification
	case ReasonDuplicate:
		return CategoryDuplicate
	default:
		return CategoryValidation
	}
}

func reject(reason Reason, code string, selected, detected carrier.Carrier) *RejectionError {
	return &RejectionError{Reason: reason, Code: code, Selected: selected, Detected: detected}
}

// AsRejection unwraps a *RejectionError from err.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
