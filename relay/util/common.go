package util

import (
	"net/http"

	"github.com/drunkenberger/akiba/relay/model"
)

const UpstreamErrorType = "upstream_error"

func ErrorWrapper(err error, code string, statusCode int) *model.ErrorWithStatusCode {
	return ErrorWrapperWithMessage(err.Error(), code, statusCode)
}

func ErrorWrapperWithMessage(message string, code string, statusCode int) *model.ErrorWithStatusCode {
	return &model.ErrorWithStatusCode{
		Error: model.Error{
			Message: message,
			Type:    "akiba_error",
			Code:    code,
		},
		StatusCode: statusCode,
	}
}

// RelayUpstreamError keeps the upstream status and body untouched.
func RelayUpstreamError(statusCode int, body []byte) *model.ErrorWithStatusCode {
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusBadGateway
	}
	return &model.ErrorWithStatusCode{
		Error: model.Error{
			Message: string(body),
			Type:    UpstreamErrorType,
			Code:    statusCode,
		},
		StatusCode: statusCode,
	}
}
