// Package network provides the shared HTTP client used for content API requests.
package network

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/key"
)

// Client is shared by every provider. Configure adjusts it from settings.
var Client = &http.Client{
	Transport: newTransport(),
}

// Configure applies api.timeout and api.tls_fingerprint to Client.
// A zero timeout leaves requests unbounded.
func Configure() {
	Client.Timeout = viper.GetDuration(key.APITimeout)

	if viper.GetBool(key.APITLSFingerprint) {
		Client.Transport = Fingerprinted
	} else {
		Client.Transport = newTransport()
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
