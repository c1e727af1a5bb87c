package errors

import "errors"

var (
	// ErrCardNotFound indicates that the specified training card was not found
	ErrCardNotFound = errors.New("card not found")

	// ErrNoActivePackage indicates that the customer has no active PT package
	ErrNoActivePackage = errors.New("no active personal training package found")

	// ErrConsultantNotFound indicates that no enabled consultant matches the login
	ErrConsultantNotFound = errors.New("consultant not found or not enabled")
)
