package utils

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldErrors map[string]string

var setupOnce sync.Once

// SetupValidator makes validation errors report json field names and
// registers the custom "slug" and "hexrgb" tags. Safe to call more than once.
func SetupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return IsSlug(fl.Field().String())
		})
		_ = v.RegisterValidation("hexrgb", func(fl validator.FieldLevel) bool {
			return IsHexRGB(fl.Field().String())
		})
	})
}

// FromBindError turns a ShouldBindJSON error into field -> message pairs.
// Nested fields keep their path, e.g. "price.current" or "items[0].quantity".
func FromBindError(err error) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fieldKey(fe.Namespace())] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		out[typeErr.Field] = "Must be a " + typeErr.Type.String()
		return out
	}

	out["_"] = "Malformed request body"
	return out
}

// fieldKey drops the top-level struct name from a validator namespace.
func fieldKey(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "hexrgb":
		return "Must be a hex color like #RRGGBB"
	case "slug":
		return "Must contain only lowercase letters, digits and single dashes"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(param, " ", ", ")
	case "min":
		return "Must be at least " + param
	case "max":
		return "Must be at most " + param
	case "gt":
		return "Must be greater than " + param
	case "gte":
		return "Must be at least " + param
	default:
		return "Invalid value"
	}
}
