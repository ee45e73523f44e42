package devserver

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNames sync.Once

// useJSONFieldNames makes gin's validator report fields by their JSON name.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// fieldErrors converts a bind error into the per-field "data" map of a
// BODY_NOT_VALID envelope. ok is false when err is not a validation failure,
// such as malformed JSON.
func fieldErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = reason(fe)
	}
	return out, true
}

func reason(fe validator.FieldError) string {
	path := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Path `%s` is required.", path)
	case "oneof":
		return fmt.Sprintf("`%v` is not a valid enum value for path `%s`.", fe.Value(), path)
	case "email":
		return fmt.Sprintf("Path `%s` is invalid (%v).", path, fe.Value())
	case "min":
		return fmt.Sprintf("Path `%s` (`%v`) is shorter than the minimum allowed length (%s).", path, fe.Value(), fe.Param())
	case "max":
		return fmt.Sprintf("Path `%s` (`%v`) is longer than the maximum allowed length (%s).", path, fe.Value(), fe.Param())
	}
	return fmt.Sprintf("Path `%s` is invalid.", path)
}
