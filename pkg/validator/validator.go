package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(tagName)
}

func tagName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "mapstructure"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError is returned for malformed input; Fields carries the per-field detail.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// NewError builds a single-field ValidationError for checks done outside struct tags.
func NewError(field, tag, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Tag: tag, Message: message}}}
}

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	root := reflect.TypeOf(s)
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		param := fe.Param()
		if strings.HasSuffix(fe.Tag(), "field") {
			param = siblingName(root, fe)
		}
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   param,
			Message: message(fe, param),
		})
	}
	return &ValidationError{Fields: fields}
}

// siblingName resolves the Go field name a *field tag compares against
// to the name callers see in json or mapstructure.
func siblingName(root reflect.Type, fe validator.FieldError) string {
	if root == nil {
		return fe.Param()
	}
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) < 2 {
		return fe.Param()
	}
	t := root
	for _, part := range parts[1 : len(parts)-1] {
		if i := strings.IndexByte(part, '['); i >= 0 {
			part = part[:i]
		}
		parent := indirect(t)
		if parent.Kind() != reflect.Struct {
			return fe.Param()
		}
		f, ok := parent.FieldByName(part)
		if !ok {
			return fe.Param()
		}
		t = f.Type
	}

	t = indirect(t)
	if t.Kind() != reflect.Struct {
		return fe.Param()
	}
	f, ok := t.FieldByName(fe.Param())
	if !ok {
		return fe.Param()
	}
	if name := tagName(f); name != "" {
		return name
	}
	return fe.Param()
}

func indirect(t reflect.Type) reflect.Type {
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
			t = t.Elem()
		default:
			return t
		}
	}
}

func message(fe validator.FieldError, param string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", fe.Field(), param)
	default:
		return fmt.Sprintf("Field: %s, Tag: %s, Param: %s", fe.Field(), fe.Tag(), fe.Param())
	}
}
