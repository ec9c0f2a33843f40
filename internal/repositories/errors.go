package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrConstraint = errors.New("constraint violation")

	// ErrConsoleInUse is returned when deleting a console that games still reference.
	ErrConsoleInUse = fmt.Errorf("%w: console still has games", ErrConstraint)
)

// translate maps store errors onto the package sentinels. Drivers that do not
// implement gorm's error translation are recognised by message.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConstraint):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrDuplicatedKey), isConstraintMessage(err):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}

func isConstraintMessage(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, s := range []string{
		"constraint failed",      // sqlite
		"duplicate entry",        // mysql 1062
		"foreign key constraint", // mysql 1451/1452, postgres 23503
		"violates unique constraint",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
