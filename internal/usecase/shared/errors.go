package shared

import (
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
)

var (
	ErrUserNotFound        = errs.Wrap(errs.ErrNotFound, "user not found")
	ErrItemNotFound        = errs.Wrap(errs.ErrNotFound, "item not found")
	ErrBookingNotFound     = errs.Wrap(errs.ErrNotFound, "booking not found")
	ErrItemRequestNotFound = errs.Wrap(errs.ErrNotFound, "item request not found")
	ErrEmailTaken          = errs.Wrap(errs.ErrConflict, "email already registered")
	ErrStaleWrite          = errs.Wrap(errs.ErrConcurrentModification, "resource was modified concurrently, retry the request")
)

// MapRepoErr turns a repository error into the taxonomy. notFound is returned
// for missing rows; other kinds map to fixed errors and DB failures pass through.
func MapRepoErr(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindConflict):
		return ErrStaleWrite
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Wrap(errs.ErrConflict, "resource already exists")
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return notFound
	default:
		return err
	}
}
