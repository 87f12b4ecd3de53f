package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator checks request structs and reports failures by JSON field name
type Validator struct {
	validate *validator.Validate
}

var (
	sharedValidator *Validator
	validatorOnce   sync.Once
)

// task and upgrade ids share the player id alphabet
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// GetValidator returns the process-wide validator, building it on first use
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
			id := fl.Field().String()
			return id == "" || identifierPattern.MatchString(id)
		}); err != nil {
			panic(err)
		}
		sharedValidator = &Validator{validate: v}
	})
	return sharedValidator
}

// jsonFieldName reports fields by their wire name; untagged fields fall back
// to the lowercased Go name
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name)
	}
	return name
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

var fieldMessages = map[string]func(param string) string{
	"required":   func(string) string { return "This field is required" },
	"identifier": func(string) string { return "Only letters, digits, '-' and '_' are allowed" },
	"max":        func(p string) string { return "Must be at most " + p },
	"min":        func(p string) string { return "Must be at least " + p },
	"gte":        func(p string) string { return "Must be at least " + p },
	"gt":         func(p string) string { return fmt.Sprintf("Must be greater than %s", p) },
}

// FormatValidationError maps each failing field to a client-facing message
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg := "Invalid value"
		if f, ok := fieldMessages[fe.Tag()]; ok {
			msg = f(fe.Param())
		}
		out[fe.Field()] = msg
	}
	return out
}
