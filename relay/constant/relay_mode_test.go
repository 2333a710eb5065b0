package constant

import "testing"

func TestPath2RelayMode(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"/api/generate-image", RelayModeImageGeneration},
		{"/api/generate-video", RelayModeVideoGeneration},
		{"/api/styles", RelayModeUnknown},
		{"/", RelayModeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Path2RelayMode(tt.path); got != tt.want {
				t.Errorf("Path2RelayMode(%v) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
