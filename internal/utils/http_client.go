package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// NewRestClient returns a JSON resty client rooted at baseURL. It never
// retries on its own; callers decide what is worth repeating. A
// non-positive timeout keeps resty's default.
func NewRestClient(baseURL string, timeout time.Duration) *resty.Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}
