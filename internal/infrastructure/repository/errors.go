package repository

import (
	"errors"
	"fmt"

	"github.com/waste3d/mindwell-api/internal/domain"

	"gorm.io/gorm"
)

// translate maps gorm errors onto the domain taxonomy. It relies on
// gorm.Config.TranslateError so unique violations arrive as ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrConflict
	default:
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
}
