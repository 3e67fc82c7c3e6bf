package repository

import (
	"errors"

	"github.com/lib/pq"

	appErrors "github.com/noah-isme/srs-portal/pkg/errors"
)

const uniqueViolation = "23505"

// translateConstraint converts driver-level constraint failures into typed
// domain errors so callers never sniff error text.
func translateConstraint(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, message)
	}
	return err
}
