package constant

import "strings"

const APITypeUnknown = -1

const (
	APITypeFal = iota
)

// Backend2APIType maps the GENERATION_BACKEND name to an adaptor type.
func Backend2APIType(backend string) int {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "fal":
		return APITypeFal
	}
	return APITypeUnknown
}
