package nets

import (
	"net/http"
	"time"
)

type HTTPClient = *http.Client

// HTTPClient dials through the configured proxy for non-local hosts.
func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Timeout: time.Minute,
		Transport: &http.Transport{
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
