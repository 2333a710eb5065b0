package service

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/drunkenberger/akiba/common/config"
	"golang.org/x/net/proxy"
)

var (
	proxyClientLock sync.Mutex
	proxyClients    = make(map[string]*http.Client)
)

// relayTimeout is zero unless RELAY_TIMEOUT is set, which leaves the
// http.Client default (no timeout) in place.
func relayTimeout() time.Duration {
	if config.RelayTimeout > 0 {
		return time.Duration(config.RelayTimeout) * time.Second
	}
	return 0
}

// ResetProxyClientCache drops cached clients so the next call rebuilds them.
func ResetProxyClientCache() {
	proxyClientLock.Lock()
	defer proxyClientLock.Unlock()
	for _, client := range proxyClients {
		if transport, ok := client.Transport.(*http.Transport); ok && transport != nil {
			transport.CloseIdleConnections()
		}
	}
	proxyClients = make(map[string]*http.Client)
}

// NewProxyHttpClient returns the client used for outbound generation calls,
// routed through proxyURL (http, https, socks5, socks5h) when it is set.
func NewProxyHttpClient(proxyURL string) (*http.Client, error) {
	if proxyURL == "" {
		return &http.Client{Timeout: relayTimeout()}, nil
	}

	proxyClientLock.Lock()
	if client, ok := proxyClients[proxyURL]; ok {
		proxyClientLock.Unlock()
		return client, nil
	}
	proxyClientLock.Unlock()

	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		return nil, err
	}

	var client *http.Client
	switch parsedURL.Scheme {
	case "http", "https":
		client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				ForceAttemptHTTP2:   true,
				Proxy:               http.ProxyURL(parsedURL),
			},
		}

	case "socks5", "socks5h":
		var auth *proxy.Auth
		if parsedURL.User != nil {
			auth = &proxy.Auth{
				User:     parsedURL.User.Username(),
				Password: "",
			}
			if password, ok := parsedURL.User.Password(); ok {
				auth.Password = password
			}
		}

		// DNS is resolved by the proxy as well, so socks5 behaves like socks5h.
		dialer, err := proxy.SOCKS5("tcp", parsedURL.Host, auth, proxy.Direct)
		if err != nil {
			return nil, err
		}

		client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				ForceAttemptHTTP2:   true,
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					return dialer.Dial(network, addr)
				},
			},
		}

	default:
		return nil, fmt.Errorf("unsupported proxy scheme: %s, must be http, https, socks5 or socks5h", parsedURL.Scheme)
	}

	client.Timeout = relayTimeout()
	proxyClientLock.Lock()
	proxyClients[proxyURL] = client
	proxyClientLock.Unlock()
	return client, nil
}
