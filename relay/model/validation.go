package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var setupValidatorOnce sync.Once

// SetupValidator registers the request rules on gin's shared validator.
func SetupValidator() {
	setupValidatorOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterValidations(v)
		}
	})
}

func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("akiba_style", func(fl validator.FieldLevel) bool {
		_, ok := GetStyle(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("akiba_music", func(fl validator.FieldLevel) bool {
		_, ok := GetMusicTrack(fl.Field().String())
		return ok
	})
}

// ValidationMessage turns a binding error into the text shown to the user.
func ValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "invalid request body: " + err.Error()
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "notblank", "required":
			messages = append(messages, fmt.Sprintf("%s is required", fe.Field()))
		case "akiba_style":
			messages = append(messages, fmt.Sprintf("unknown style: %v", fe.Value()))
		case "akiba_music":
			messages = append(messages, fmt.Sprintf("unknown music track: %v", fe.Value()))
		case "gte", "lte":
			messages = append(messages, fmt.Sprintf("%s must be between 0 and 1", fe.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(messages, "; ")
}
