package model

// GenerationRequest is the body the browser posts to both generation endpoints.
type GenerationRequest struct {
	Prompt        string   `json:"prompt" binding:"notblank"`
	Style         string   `json:"style,omitempty" binding:"omitempty,akiba_style"`
	Music         string   `json:"music,omitempty" binding:"omitempty,akiba_music"`
	StyleStrength *float64 `json:"styleStrength,omitempty" binding:"omitempty,gte=0,lte=1"`
}

type ImageResponse struct {
	ImageUrl string `json:"imageUrl"`
}

type VideoResponse struct {
	VideoUrl string      `json:"videoUrl"`
	Music    *MusicTrack `json:"music,omitempty"`
}
