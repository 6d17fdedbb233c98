package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation базовая ошибка для всех ошибок валидации.
var ErrValidation = errors.New("validation failed")

// ValidationError перечисляет поля, не прошедшие проверку.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// newValidator создаёт валидатор, который называет поля по json-тегам.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// toValidationError переводит ошибки validator в ValidationError.
func toValidationError(err error, prefix string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	seen := map[string]bool{}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		// patents[0] → patents
		if i := strings.IndexByte(name, '['); i > 0 {
			name = name[:i]
		}
		name = prefix + name
		if !seen[name] {
			seen[name] = true
			fields = append(fields, name)
		}
	}
	return &ValidationError{Fields: fields}
}
