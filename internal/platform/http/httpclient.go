// Package http provides shared HTTP client construction.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client with an explicitly configured
// transport. http.DefaultClient is never used so connection pooling and
// handshake limits are always under our control.
//
// A timeout of 0 disables the overall request timeout; the registry client
// relies on this, the current contract configures no request deadline.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
