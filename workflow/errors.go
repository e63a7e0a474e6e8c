package workflow

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Controllers match these with errors.Is to pick a status code;
// the wrapped message carries the entity and rule that failed.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation error")
	ErrTransactionFailure = errors.New("transaction failure")
)

func notFound(format string, args ...any) error {
	return kindError(ErrNotFound, format, args...)
}

func forbidden(format string, args ...any) error {
	return kindError(ErrForbidden, format, args...)
}

func invalidTransition(format string, args ...any) error {
	return kindError(ErrInvalidTransition, format, args...)
}

func conflict(format string, args ...any) error {
	return kindError(ErrConflict, format, args...)
}

func validationError(format string, args ...any) error {
	return kindError(ErrValidation, format, args...)
}

func kindError(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// IsKind reports whether err belongs to any of the taxonomy kinds above.
func IsKind(err error) bool {
	for _, kind := range []error{
		ErrNotFound, ErrForbidden, ErrInvalidTransition,
		ErrConflict, ErrValidation, ErrTransactionFailure,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// wrapTxErr normalizes errors escaping an atomic unit. Taxonomy errors pass
// through, uniqueness violations become Conflict, anything else (a failed
// commit, a vanished row mid-unit) surfaces as TransactionFailure so callers
// know the whole action rolled back and may be retried.
func wrapTxErr(err error) error {
	if err == nil {
		return nil
	}
	if IsKind(err) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return kindError(ErrConflict, "duplicate record")
	}
	return fmt.Errorf("%w: %v", ErrTransactionFailure, err)
}
