package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrBackendUnavailable, code, body)
	case code >= http.StatusBadRequest:
		return fmt.Errorf("%w: http %d: %s", ErrBadRequest, code, body)
	default:
		return fmt.Errorf("%w: unexpected http %d", ErrBackendUnavailable, code)
	}
}
