package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFound reports whether err stems from a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
