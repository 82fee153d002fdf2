package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEmail is returned when a user with the given email exists.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateRegistration is returned when a patient already has a
	// registration record.
	ErrDuplicateRegistration = errors.New("patient already registered")

	// ErrAlreadyPaid is returned when a receipt already exists for a bill.
	ErrAlreadyPaid = errors.New("bill already paid")
)

// NotFoundError reports a foreign reference to a row that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
