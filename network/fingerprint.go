package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

// Fingerprinted is a RoundTripper that presents Chrome's TLS ClientHello.
// It tries HTTP/2 first and falls back to HTTP/1.1 when h2 negotiation fails.
var Fingerprinted http.RoundTripper = &fingerprintTransport{}

type fingerprintTransport struct {
	once sync.Once
	h2   *http2.Transport
	h1   *http.Transport
}

func (f *fingerprintTransport) init() {
	f.h2 = &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			return dialChrome(ctx, network, addr, nil)
		},
	}
	f.h1 = &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialChrome(ctx, network, addr, []string{"http/1.1"})
		},
	}
}

func (f *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.once.Do(f.init)

	if req.URL.Scheme != "https" {
		return f.h1.RoundTrip(req)
	}

	resp, err := f.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	// Bodies are consumed by the first attempt, so only bodiless requests are replayed.
	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, err
		}
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, bodyErr
		}
		req = req.Clone(req.Context())
		req.Body = body
	}

	return f.h1.RoundTrip(req)
}

func dialChrome(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
