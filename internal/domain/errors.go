package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Repository error types

var (
	// ErrConnection indicates a backend session could not be established
	ErrConnection = errors.New("repository connection failed")

	// ErrSessionClosed indicates a request was issued on a session that was already closed
	ErrSessionClosed = errors.New("repository session closed")

	// ErrNotFound indicates the requested document does not exist
	ErrNotFound = errors.New("document not found")

	// ErrAmbiguousResult indicates a lookup by id matched more than one document
	ErrAmbiguousResult = errors.New("too many documents found")

	// ErrNoContent indicates a document carries no file content
	ErrNoContent = errors.New("document has no content")

	// ErrUnexpectedResult indicates an operation returned a different result variant than expected
	ErrUnexpectedResult = errors.New("unexpected operation result")

	// ErrInvalidRequest indicates an invalid request was made (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")

	// ErrPermissionDenied indicates the backend refused the credentials or the action
	ErrPermissionDenied = errors.New("permission denied")

	// ErrConflict indicates the backend rejected the change because of the document state
	ErrConflict = errors.New("conflict")

	// ErrRepositoryUnavailable indicates the repository service failed (5xx server errors)
	ErrRepositoryUnavailable = errors.New("repository service unavailable")
)

// RemoteError is a failure reported by the backend, surfaced verbatim.
type RemoteError struct {
	StatusCode int
	Operation  string
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("status %d - %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: status %d - %s", e.Operation, e.StatusCode, e.Message)
}

// Unwrap maps the status code onto the error taxonomy.
func (e *RemoteError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return ErrPermissionDenied
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return ErrConflict
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return ErrInvalidRequest
	default:
		return ErrRepositoryUnavailable
	}
}
