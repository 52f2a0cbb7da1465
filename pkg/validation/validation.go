// Package validation valida DTOs con go-playground/validator usando las etiquetas `validate` y el nombre JSON del campo.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// Error errores de validación por campo.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

// Struct valida s. Devuelve *Error si alguna regla falla.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &Error{Fields: fields}
}

func message(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", f)
	case "email":
		return fmt.Sprintf("%s debe ser un email válido", f)
	case "uuid":
		return fmt.Sprintf("%s debe ser un UUID válido", f)
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres", f, fe.Param())
	case "max":
		return fmt.Sprintf("%s admite máximo %s caracteres", f, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", f, fe.Param())
	default:
		return fmt.Sprintf("%s no cumple la regla '%s'", f, fe.Tag())
	}
}
