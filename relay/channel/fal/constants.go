package fal

import "github.com/drunkenberger/akiba/common/config"

const ChannelName = "fal"

const (
	defaultImageSize = "landscape_16_9"
	defaultNumFrames = 16
	defaultFps       = 8
	// stable-video motion_bucket_id bounds
	minMotionBucket = 1
	maxMotionBucket = 255
)

func ModelList() []string {
	return []string{
		config.FalImageModel,
		config.FalImageToImageModel,
		config.FalVideoModel,
		config.FalImageToVideoModel,
	}
}
