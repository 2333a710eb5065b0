package util

import (
	"net/http"

	"github.com/drunkenberger/akiba/common/config"
	"github.com/drunkenberger/akiba/service"
)

var HTTPClient = &http.Client{}

// InitHTTPClient rebuilds HTTPClient from RELAY_PROXY and RELAY_TIMEOUT.
// Clients cached for an earlier configuration are dropped first.
func InitHTTPClient() error {
	service.ResetProxyClientCache()
	client, err := service.NewProxyHttpClient(config.RelayProxy)
	if err != nil {
		return err
	}
	HTTPClient = client
	return nil
}
