package common

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"
)

const KeyRequestBody = "key_request_body"

// GetRequestBody reads the body once and caches it on the context.
func GetRequestBody(c *gin.Context) ([]byte, error) {
	requestBody, _ := c.Get(KeyRequestBody)
	if requestBody != nil {
		return requestBody.([]byte), nil
	}
	requestBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	_ = c.Request.Body.Close()
	c.Set(KeyRequestBody, requestBody)
	return requestBody.([]byte), nil
}

// UnmarshalBodyReusable binds the JSON body into v (running binding
// validation) and leaves the body readable for later handlers.
func UnmarshalBodyReusable(c *gin.Context, v any) error {
	requestBody, err := GetRequestBody(c)
	if err != nil {
		return err
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
	err = c.ShouldBindJSON(v)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
	return err
}
