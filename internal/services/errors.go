package services

import "errors"

var (
	// ErrNotFound means the addressed record does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict means the write would duplicate a unique record
	ErrConflict = errors.New("conflict")
	// ErrForbidden means the identity may not modify the record
	ErrForbidden = errors.New("forbidden")
)
