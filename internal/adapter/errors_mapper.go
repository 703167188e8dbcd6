package adapter

import (
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns any non-2xx reply into an *HTTPError carrying the
// trimmed body text.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return &HTTPError{
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(resp.String()),
	}
}
