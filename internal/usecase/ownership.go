package usecase

import (
	"github.com/google/uuid"

	"github.com/fablestream/fablestream/internal/domain"
)

// authorizeOwner is the single ownership gate for user-generated records.
// Callers fetch the record first, so a missing record surfaces as NotFound
// before ownership is ever considered; a present record with a different
// owner is Forbidden. The two outcomes stay distinct deliberately.
func authorizeOwner(actor uuid.UUID, record domain.Owned, resource string) error {
	if record.OwnerID() != actor {
		return domain.ForbiddenError{Resource: resource}
	}
	return nil
}
