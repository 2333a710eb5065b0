package client

import "github.com/drunkenberger/akiba/relay/model"

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

func (k Kind) path() string {
	if k == KindVideo {
		return "/api/generate-video"
	}
	return "/api/generate-image"
}

func (k Kind) extension() string {
	if k == KindVideo {
		return "mp4"
	}
	return "png"
}

// GenerationRequest is built once per submission and never modified after
// it has been handed to the dispatcher.
type GenerationRequest struct {
	Kind          Kind     `json:"-"`
	Prompt        string   `json:"prompt"`
	Style         string   `json:"style,omitempty"`
	Music         string   `json:"music,omitempty"`
	StyleStrength *float64 `json:"styleStrength,omitempty"`
}

type GenerationResult struct {
	Kind     Kind
	MediaURL string
	Music    *model.MusicTrack
}
