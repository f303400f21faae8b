// Package network builds the HTTP clients used to reach a listic server.
package network

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

// DefaultTimeout bounds a single request made by a client from NewHTTPClient.
const DefaultTimeout = 30 * time.Second

// ClientFactory creates HTTP clients that optionally route through a proxy.
type ClientFactory struct {
	proxyURL   string
	testClient *http.Client
}

// NewClientFactory returns a factory. proxyURL may be empty, http(s)://, or socks5://.
func NewClientFactory(proxyURL string) (*ClientFactory, error) {
	proxyURL = strings.TrimSpace(proxyURL)
	if proxyURL != "" {
		if _, err := newTransport(proxyURL); err != nil {
			return nil, err
		}
	}
	return &ClientFactory{proxyURL: proxyURL}, nil
}

// NewClientFactoryForTest returns a factory that always hands out client.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	return &ClientFactory{testClient: client}
}

// ProxyURL returns the configured proxy, or "".
func (f *ClientFactory) ProxyURL() string {
	return f.proxyURL
}

// NewHTTPClient creates a client with the given timeout, or DefaultTimeout when timeout is zero.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	if f.testClient != nil {
		return f.testClient
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}
	if f.proxyURL != "" {
		// validated in NewClientFactory
		transport, _ := newTransport(f.proxyURL)
		client.Transport = transport
	}
	return client
}

// newTransport builds a transport for proxyURL. SOCKS proxies go through
// golang.org/x/net/proxy; http and https proxies use http.ProxyURL.
func newTransport(proxyURL string) (*http.Transport, error) {
	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("parse proxy url: %w", err)
	}

	switch {
	case strings.HasPrefix(parsed.Scheme, "socks"):
		var auth *proxy.Auth
		if parsed.User != nil {
			auth = &proxy.Auth{User: parsed.User.Username()}
			if password, ok := parsed.User.Password(); ok {
				auth.Password = password
			}
		}
		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("socks5 dialer: %w", err)
		}
		return &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				if cd, ok := dialer.(proxy.ContextDialer); ok {
					return cd.DialContext(ctx, network, addr)
				}
				return dialer.Dial(network, addr)
			},
		}, nil
	case parsed.Scheme == "http" || parsed.Scheme == "https":
		return &http.Transport{Proxy: http.ProxyURL(parsed)}, nil
	default:
		return nil, fmt.Errorf("unsupported proxy scheme %q", parsed.Scheme)
	}
}
