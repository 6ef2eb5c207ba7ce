package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError fails 5xx responses and rejected credentials. Any other status
// means the service is up and answering. Response bodies are not quoted since
// a misconfigured app may echo its settings back.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()

	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("%w: http %d", ErrUnauthorized, code)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d %s", ErrInternalServerError, code, http.StatusText(code))
	default:
		return nil
	}
}
