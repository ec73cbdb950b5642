// Package pgerrs maps PostgreSQL errors raised through lib/pq onto the
// domain errors of package errs.
package pgerrs

import (
	"errors"

	"vetpickup/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

// Translate converts a database error raised while working on object
// identified by key. Unique violations become ObjectAlreadyExists and missing
// rows become ObjectNotFound. A broken foreign key is reported as the
// referenced object not being found. Other errors are returned unchanged.
func Translate(err error, object, key string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(object, key)
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case uniqueViolation:
		return errs.NewObjectAlreadyExistsError(object, key)
	case foreignKeyViolation:
		return errs.NewObjectNotFoundErrorWithCause(referencedObject(pqErr), pqErr.Detail, err)
	default:
		return err
	}
}

// referencedObject names the missing side of a foreign key violation from
// the constraint name gorm generates, e.g. fk_requesters_zone.
func referencedObject(err *pq.Error) string {
	switch err.Constraint {
	case "fk_requesters_zone", "fk_courier_zones_zone":
		return "zone"
	case "fk_requests_requester":
		return "requester"
	case "fk_requests_courier":
		return "courier"
	default:
		return err.Table
	}
}
