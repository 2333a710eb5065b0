package config

import (
	"strings"

	"github.com/drunkenberger/akiba/common/env"
	"github.com/google/uuid"
)

var SystemName = "Akiba"

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// ApiKeyHeader carries the user's own fal.ai key from the browser to the proxy.
const ApiKeyHeader = "x-fal-api-key"

var (
	ServiceName  string
	InstanceId   string
	DebugEnabled bool

	// Mode selects how the client is served: proxied from the bundler in
	// development, from disk or the embedded build otherwise.
	Mode         string
	DevServerURL string
	StaticDir    string

	// GenerationBackend names the adaptor that serves generation requests.
	GenerationBackend string

	FalBaseURL           string
	FalImageModel        string
	FalImageToImageModel string
	FalVideoModel        string
	FalImageToVideoModel string

	RelayTimeout int // unit is second
	RelayProxy   string

	// DefaultStyleStrength is used for image-to-image requests that omit it.
	DefaultStyleStrength float64

	// SentryDSN turns on error reporting when set.
	SentryDSN string
)

var defaultInstanceId = uuid.New().String()[:8]

func init() {
	Reload()
}

// Reload re-reads every setting from the environment. Called again after
// .env has been loaded.
func Reload() {
	ServiceName = env.String("SERVICE_NAME", "akiba")
	InstanceId = env.String("INSTANCE_ID", defaultInstanceId)
	DebugEnabled = env.Bool("DEBUG", false)

	Mode = env.String("APP_ENV", ModeProduction)
	DevServerURL = env.String("DEV_SERVER_URL", "http://localhost:5173")
	StaticDir = env.String("STATIC_DIR", "dist/public")

	GenerationBackend = env.String("GENERATION_BACKEND", "fal")
	FalBaseURL = strings.TrimSuffix(env.String("FAL_BASE_URL", "https://fal.run"), "/")
	FalImageModel = env.String("FAL_IMAGE_MODEL", "fal-ai/flux/schnell")
	FalImageToImageModel = env.String("FAL_IMAGE_TO_IMAGE_MODEL", "fal-ai/flux/dev/image-to-image")
	FalVideoModel = env.String("FAL_VIDEO_MODEL", "fal-ai/fast-animatediff/text-to-video")
	FalImageToVideoModel = env.String("FAL_IMAGE_TO_VIDEO_MODEL", "fal-ai/stable-video")

	RelayTimeout = env.Int("RELAY_TIMEOUT", 0)
	RelayProxy = env.String("RELAY_PROXY", "")

	DefaultStyleStrength = env.Float64("DEFAULT_STYLE_STRENGTH", 0.75)

	SentryDSN = env.String("SENTRY_DSN", "")
}

func IsDevelopment() bool {
	return strings.ToLower(Mode) == ModeDevelopment
}
