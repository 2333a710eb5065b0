package model

type Error struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code"`
}

// ErrorWithStatusCode is written back to the browser as a plain-text body
// with StatusCode; Message is shown to the user verbatim.
type ErrorWithStatusCode struct {
	Error
	StatusCode int `json:"status_code"`
}
