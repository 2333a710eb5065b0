package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDevProxyRejectsBadScheme(t *testing.T) {
	_, err := NewDevProxy("ftp://localhost:5173")
	assert.Error(t, err)
}

func TestDevProxyForwardsHTTP(t *testing.T) {
	bundler := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript")
		_, _ = io.WriteString(w, "// served "+r.URL.Path)
	}))
	defer bundler.Close()

	proxy, err := NewDevProxy(bundler.URL)
	require.NoError(t, err)
	front := httptest.NewServer(proxy)
	defer front.Close()

	resp, err := http.Get(front.URL + "/src/main.tsx")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "// served /src/main.tsx", string(body))
}

func TestDevProxyBundlerDown(t *testing.T) {
	bundler := httptest.NewServer(http.NotFoundHandler())
	bundlerURL := bundler.URL
	bundler.Close()

	proxy, err := NewDevProxy(bundlerURL)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	proxy.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestDevProxyBridgesWebSocket(t *testing.T) {
	upgrader := websocket.Upgrader{Subprotocols: []string{"vite-hmr"}}
	bundler := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			messageType, message, err := conn.ReadMessage()
			if err != nil {
				return
			}
			_ = conn.WriteMessage(messageType, []byte("echo:"+string(message)))
		}
	}))
	defer bundler.Close()

	proxy, err := NewDevProxy(bundler.URL)
	require.NoError(t, err)
	front := httptest.NewServer(proxy)
	defer front.Close()

	wsURL := "ws" + strings.TrimPrefix(front.URL, "http") + "/?token=abc"
	dialer := websocket.Dialer{Subprotocols: []string{"vite-hmr"}}
	conn, _, err := dialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, "vite-hmr", conn.Subprotocol())
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, `echo:{"type":"ping"}`, string(message))
}
