package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoConnectivity means the network is unreachable, or the TLS
	// handshake failed in a way indistinguishable from a captive portal.
	ErrNoConnectivity = errors.New("no internet connection")

	// ErrRateLimited is returned when the remote API answers 429.
	ErrRateLimited = errors.New("too many requests")

	// ErrCreateFailed means the local store rejected an insert, or the row
	// could not be read back after inserting.
	ErrCreateFailed = errors.New("error creating news")
)

// RemoteError is a non-2xx response with a body, or a well-formed response
// the client could not use.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return "an error occurred"
	}
	return e.Message
}

// NotFoundError means no news item with the given id exists in the store.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("news with id %d not found", e.ID)
}

// ValidationError lists the required fields that were blank.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "some provided fields are blank: " + strings.Join(e.Fields, ", ")
}
