package services

import (
	"errors"

	"pharmacy-admin-service/internal/domain/models"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrCityNotFound  = errors.New("city not found")
	ErrCityNameTaken = errors.New("city name already exists")
	ErrAreaNotFound  = errors.New("area not found")
	ErrInvalidName   = models.ErrInvalidName

	ErrSessionNotFound = errors.New("session not found")
)

// StorageError wraps a failure of the underlying store so callers can
// tell it apart from domain errors.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err came from the store rather than a domain rule.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
