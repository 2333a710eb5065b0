package service

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/drunkenberger/akiba/common/logger"
	"github.com/gorilla/websocket"
)

// DevProxy forwards client requests to the development bundler. Live-reload
// WebSocket connections are bridged frame by frame.
type DevProxy struct {
	target   *url.URL
	proxy    *httputil.ReverseProxy
	upgrader websocket.Upgrader
	dialer   *websocket.Dialer
}

func NewDevProxy(rawURL string) (*DevProxy, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, fmt.Errorf("unsupported dev server scheme: %s", target.Scheme)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Errorf(r.Context(), "dev server unreachable: %s", err.Error())
		http.Error(w, "dev server unreachable: "+err.Error(), http.StatusBadGateway)
	}

	return &DevProxy{
		target: target,
		proxy:  proxy,
		upgrader: websocket.Upgrader{
			// the bundler's own origin checks apply upstream
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		dialer: websocket.DefaultDialer,
	}, nil
}

func (p *DevProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if websocket.IsWebSocketUpgrade(r) {
		p.serveWebSocket(w, r)
		return
	}
	p.proxy.ServeHTTP(w, r)
}

func (p *DevProxy) upstreamURL(r *http.Request) string {
	u := *p.target
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(p.target.Path, "/") + r.URL.Path
	u.RawQuery = r.URL.RawQuery
	return u.String()
}

func (p *DevProxy) serveWebSocket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	header := http.Header{}
	if protocols := websocket.Subprotocols(r); len(protocols) > 0 {
		header.Set("Sec-WebSocket-Protocol", strings.Join(protocols, ", "))
	}
	upstream, _, err := p.dialer.DialContext(ctx, p.upstreamURL(r), header)
	if err != nil {
		logger.Errorf(ctx, "dev server websocket dial failed: %s", err.Error())
		http.Error(w, "dev server unreachable: "+err.Error(), http.StatusBadGateway)
		return
	}
	defer upstream.Close()

	responseHeader := http.Header{}
	if protocol := upstream.Subprotocol(); protocol != "" {
		responseHeader.Set("Sec-WebSocket-Protocol", protocol)
	}
	conn, err := p.upgrader.Upgrade(w, r, responseHeader)
	if err != nil {
		logger.Warnf(ctx, "websocket upgrade failed: %s", err.Error())
		return
	}
	defer conn.Close()

	done := make(chan struct{}, 2)
	go pumpWebSocket(conn, upstream, done)
	go pumpWebSocket(upstream, conn, done)
	<-done
}

// pumpWebSocket copies frames from src to dst until either side closes.
func pumpWebSocket(dst, src *websocket.Conn, done chan<- struct{}) {
	defer func() { done <- struct{}{} }()
	for {
		messageType, message, err := src.ReadMessage()
		if err != nil {
			closeCode := websocket.CloseNormalClosure
			if closeErr, ok := err.(*websocket.CloseError); ok {
				closeCode = closeErr.Code
			}
			// these codes are reserved and must not be sent on the wire
			switch closeCode {
			case websocket.CloseNoStatusReceived, websocket.CloseAbnormalClosure, websocket.CloseTLSHandshake:
				closeCode = websocket.CloseNormalClosure
			}
			_ = dst.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(closeCode, ""))
			return
		}
		if err := dst.WriteMessage(messageType, message); err != nil {
			return
		}
	}
}
