package persistence

import (
	"errors"

	"github.com/facturante/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps GORM errors onto the domain error kinds. Relies
// on TranslateError being enabled on the connection so driver-specific
// codes arrive as gorm sentinel errors.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrAlreadyExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.ErrConstraintViolation
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return shared.ErrConstraintViolation
	default:
		return err
	}
}
