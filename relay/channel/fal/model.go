package fal

// ImageRequest covers both text-to-image and image-to-image endpoints.
type ImageRequest struct {
	Prompt              string   `json:"prompt"`
	ImageURL            string   `json:"image_url,omitempty"`
	Strength            *float64 `json:"strength,omitempty"`
	ImageSize           string   `json:"image_size,omitempty"`
	NumImages           int      `json:"num_images"`
	EnableSafetyChecker bool     `json:"enable_safety_checker"`
}

// VideoRequest covers both text-to-video and image-to-video endpoints.
type VideoRequest struct {
	Prompt         string `json:"prompt,omitempty"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	NumFrames      int    `json:"num_frames,omitempty"`
	Fps            int    `json:"fps,omitempty"`
	MotionBucketId int    `json:"motion_bucket_id,omitempty"`
}

type File struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

type ImageResponse struct {
	Images          []File `json:"images"`
	Seed            int64  `json:"seed,omitempty"`
	HasNsfwConcepts []bool `json:"has_nsfw_concepts,omitempty"`
	Prompt          string `json:"prompt,omitempty"`
}

type VideoResponse struct {
	Video *File `json:"video"`
	Seed  int64 `json:"seed,omitempty"`
}
