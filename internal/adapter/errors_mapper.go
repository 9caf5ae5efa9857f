package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns a [*StatusError] for every status other than 200.
// Other 2xx codes are not treated as success.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	return &StatusError{
		Code: resp.StatusCode(),
		Body: strings.TrimSpace(string(resp.Body())),
	}
}

func transportError(op string, err error) error {
	return fmt.Errorf("%s request: %w: %w", op, ErrTransport, err)
}

func decodeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDecode, err)
}
