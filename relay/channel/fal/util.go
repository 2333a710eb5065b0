package fal

import (
	"math"
	"net/url"
	"strings"

	"github.com/drunkenberger/akiba/relay/model"
)

// IsImageURL reports whether the prompt is a pasted image link rather than
// a description.
func IsImageURL(prompt string) bool {
	prompt = strings.TrimSpace(prompt)
	if strings.HasPrefix(prompt, "data:image/") {
		return true
	}
	if strings.ContainsAny(prompt, " \t\n") {
		return false
	}
	u, err := url.Parse(prompt)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// StylePrompt appends the style's fragment to the description. For image
// inputs the fragment alone becomes the prompt.
func StylePrompt(prompt string, styleTag string, imageInput bool) string {
	if styleTag == "" {
		styleTag = model.DefaultStyle
	}
	style, ok := model.GetStyle(styleTag)
	if !ok {
		return strings.TrimSpace(prompt)
	}
	if imageInput {
		return style.PromptSuffix
	}
	return strings.TrimSpace(prompt) + ", " + style.PromptSuffix
}

// MotionBucket maps a strength in [0,1] onto stable-video's motion range.
func MotionBucket(strength float64) int {
	bucket := minMotionBucket + int(math.Round(strength*float64(maxMotionBucket-minMotionBucket)))
	if bucket < minMotionBucket {
		return minMotionBucket
	}
	if bucket > maxMotionBucket {
		return maxMotionBucket
	}
	return bucket
}
