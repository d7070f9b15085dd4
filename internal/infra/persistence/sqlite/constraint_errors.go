package sqlite

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err came from a unique index.
// The driver translates these to gorm.ErrDuplicatedKey when TranslateError is
// on; the message check covers raw statements that bypass translation.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
