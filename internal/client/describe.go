package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/task-manager-client/internal/adapter"
	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/internal/service"
)

// describe renders the reason part of a failure diagnostic. Transport, HTTP
// and GraphQL failures produce textually distinct reasons.
func describe(err error) string {
	var statusErr *adapter.StatusError
	var gqlErr *adapter.GraphQLError

	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf(app.MsgHTTPStatus, statusErr.Code, statusErr.Body)
	case errors.As(err, &gqlErr):
		return fmt.Sprintf(app.MsgGraphQLErrors, gqlErr.Error())
	case errors.Is(err, adapter.ErrTransport):
		return fmt.Sprintf(app.MsgRequestFailed, after(err, adapter.ErrTransport))
	case errors.Is(err, adapter.ErrDecode):
		return fmt.Sprintf(app.MsgInvalidResponse, after(err, adapter.ErrDecode))
	case errors.Is(err, service.ErrEmptyToken):
		return app.MsgNoTokenReturned
	case errors.Is(err, service.ErrEmptyResult):
		return app.MsgEmptyResult
	default:
		return err.Error()
	}
}

// describeProbe is describe for health and metrics, which report only the
// status code of an HTTP failure.
func describeProbe(err error) string {
	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf(app.MsgHTTPStatusOnly, statusErr.Code)
	}
	return describe(err)
}

// after returns the part of err's message following marker.
func after(err, marker error) string {
	msg := err.Error()
	prefix := marker.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}
