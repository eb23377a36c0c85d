package rdb

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// These rely on gorm.Config.TranslateError, which maps driver codes
// (23505/1062/2067 and 23503/1452/787) onto the gorm sentinels.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
