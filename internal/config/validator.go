package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// validatorInstance returns the shared validator with the gallery rules
// registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their YAML names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("kind", func(fl validator.FieldLevel) bool {
			return slices.Contains(Kinds, fl.Field().String())
		})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks doc against the struct rules, then that page names are
// unique.
func Validate(doc *Document) error {
	if doc == nil {
		return newValidationError("", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Pages))
	for i, page := range doc.Pages {
		if first, ok := seen[page.Name]; ok {
			return newValidationError(
				fmt.Sprintf("pages[%d].name", i),
				fmt.Sprintf("duplicate page name %q (first used by pages[%d])", page.Name, first),
				nil,
			)
		}
		seen[page.Name] = i
	}
	return nil
}

// convertValidationError turns the first validator failure into a
// ValidationError.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return newValidationError("", err.Error(), err)
	}

	fe := ves[0]
	field := fe.Namespace()
	// Drop the root struct name.
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	msg := fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	switch fe.Tag() {
	case "kind":
		msg = fmt.Sprintf("unknown kind %q (want one of %s)", fe.Value(), strings.Join(Kinds, ", "))
	case "oneof":
		msg = fmt.Sprintf("%q is not one of: %s", fe.Value(), fe.Param())
	case "required":
		msg = "is required"
	}
	return newValidationError(field, msg, err)
}
