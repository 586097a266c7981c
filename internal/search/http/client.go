package http

import (
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client tuned for repeated calls to a small
// set of search hosts. Proxy settings are taken from the environment so the
// scrape backend can be routed through an egress proxy.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
