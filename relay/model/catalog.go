package model

type Style struct {
	Tag         string `json:"tag"`
	Label       string `json:"label"`
	Description string `json:"description"`
	// PromptSuffix is appended to the user's prompt before it reaches the backend.
	PromptSuffix string `json:"-"`
}

type MusicTrack struct {
	Tag     string `json:"tag"`
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	BPM     int    `json:"bpm"`
	Preview string `json:"preview"`
}

const DefaultStyle = "dramatic"

var Styles = []Style{
	{
		Tag:          "dramatic",
		Label:        "Dramatic",
		Description:  "High contrast lighting and intense close-ups",
		PromptSuffix: "anime key visual, dramatic lighting, intense expression, cinematic composition",
	},
	{
		Tag:          "action",
		Label:        "Action",
		Description:  "Speed lines, motion blur and dynamic angles",
		PromptSuffix: "anime action scene, speed lines, dynamic camera angle, motion blur",
	},
	{
		Tag:          "romance",
		Label:        "Romance",
		Description:  "Soft pastel palette and cherry blossoms",
		PromptSuffix: "shoujo anime, soft pastel colors, cherry blossoms, warm sunset glow",
	},
	{
		Tag:          "retro",
		Label:        "90s Retro",
		Description:  "Cel shading and VHS grain from the 90s",
		PromptSuffix: "1990s retro anime, cel shading, vhs grain, muted film colors",
	},
	{
		Tag:          "cyberpunk",
		Label:        "Cyberpunk",
		Description:  "Neon Akihabara nights",
		PromptSuffix: "cyberpunk akihabara at night, neon signs, rain reflections, anime style",
	},
	{
		Tag:          "chibi",
		Label:        "Chibi",
		Description:  "Cute super-deformed characters",
		PromptSuffix: "chibi anime style, super deformed, big eyes, cute pastel background",
	},
}

var MusicTracks = []MusicTrack{
	{Tag: "synthwave", Title: "Neon Drive", Artist: "Akiba Sound Team", BPM: 118, Preview: "/audio/synthwave.mp3"},
	{Tag: "jpop", Title: "Sakura Signal", Artist: "Akiba Sound Team", BPM: 128, Preview: "/audio/jpop.mp3"},
	{Tag: "lofi", Title: "Late Train Home", Artist: "Akiba Sound Team", BPM: 82, Preview: "/audio/lofi.mp3"},
	{Tag: "eurobeat", Title: "Mountain Pass", Artist: "Akiba Sound Team", BPM: 155, Preview: "/audio/eurobeat.mp3"},
	{Tag: "orchestral", Title: "Final Episode", Artist: "Akiba Sound Team", BPM: 96, Preview: "/audio/orchestral.mp3"},
}

func GetStyle(tag string) (Style, bool) {
	for _, style := range Styles {
		if style.Tag == tag {
			return style, true
		}
	}
	return Style{}, false
}

func GetMusicTrack(tag string) (MusicTrack, bool) {
	for _, track := range MusicTracks {
		if track.Tag == tag {
			return track, true
		}
	}
	return MusicTrack{}, false
}
