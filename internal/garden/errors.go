package garden

import (
	"errors"
	"fmt"
)

var (
	ErrPlantNotFound = errors.New("plant not found")
	ErrUnknownKind   = errors.New("unknown plant kind")
	ErrNoGarden      = errors.New("no garden loaded")
)

// PersistenceError reports a failed read, write or delete against the store.
// It is meant for the operator log, not for the user.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// AuthError reports a failed sign-up, sign-in or sign-out. Its message is
// shown to the user as is.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// IsPersistence reports whether err is or wraps a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
