package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
	ErrDeadline        = errors.New("deadline exceeded")
	ErrCanceled        = errors.New("context canceled")
	ErrUniqueViolation = errors.New("unique violation")

	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrQueueEmpty         = errors.New("queue is empty")
)

// Submission rejections. These carry user-facing text and map to 4xx.
var (
	ErrInvalidIdentifier  = errors.New("identifier must be at least 8 characters")
	ErrContentRejected    = errors.New("links are not allowed in messages")
	ErrCooldownActive     = errors.New("please wait before submitting again")
	ErrLimitExceeded      = errors.New("too many alerts created recently")
	ErrTooFarFromReporter = errors.New("report location is too far from your device location")
	ErrLocationUnverified = errors.New("your device location is required to submit a report")
)

// Delivery failures. Confined to the notification path, logged only.
var (
	ErrPermanentFailure = errors.New("permanent delivery failure")
	ErrTransientFailure = errors.New("transient delivery failure")
)

// IsValidation reports whether err belongs to the submitter-facing
// rejection set.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidIdentifier) ||
		errors.Is(err, ErrContentRejected) ||
		errors.Is(err, ErrCooldownActive) ||
		errors.Is(err, ErrLimitExceeded) ||
		errors.Is(err, ErrTooFarFromReporter) ||
		errors.Is(err, ErrLocationUnverified)
}

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
