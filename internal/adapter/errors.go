package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/task-manager-client/models"
)

var (
	// ErrTransport marks failures where no HTTP response was received:
	// connection refused, DNS failure, timeout.
	ErrTransport = errors.New("transport failure")
	// ErrUnexpectedStatus is matched by every [*StatusError].
	ErrUnexpectedStatus = errors.New("unexpected http status")
	// ErrGraphQL is matched by every [*GraphQLError].
	ErrGraphQL = errors.New("graphql errors")
	// ErrDecode marks a response body that could not be decoded.
	ErrDecode = errors.New("decode response")
)

// StatusError is returned for any reply whose status is not 200.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.Code)
	}
	return fmt.Sprintf("%d - %s", e.Code, body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// GraphQLError is returned when an HTTP-200 GraphQL reply carries a non-empty
// errors array.
type GraphQLError struct {
	Errors []models.GraphQLError
}

func (e *GraphQLError) Error() string {
	return models.JoinGraphQLMessages(e.Errors)
}

func (e *GraphQLError) Is(target error) bool {
	return target == ErrGraphQL
}
