package constant

import "strings"

const (
	RelayModeUnknown = iota
	RelayModeImageGeneration
	RelayModeVideoGeneration
)

func Path2RelayMode(path string) int {
	relayMode := RelayModeUnknown
	if strings.HasPrefix(path, "/api/generate-image") {
		relayMode = RelayModeImageGeneration
	} else if strings.HasPrefix(path, "/api/generate-video") {
		relayMode = RelayModeVideoGeneration
	}
	return relayMode
}
