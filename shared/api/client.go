// shared/api/client.go
package api

import (
	"net"
	"net/http"
	"time"
)

// NewDefaultHTTPClient creates a hardened http.Client with common timeouts
// and transport settings for calls to external collaborators (currently the
// generative-text API).
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{
		// Total request timeout, including connection, handshake, writing and reading.
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}
