// Package validation checks surface syntax of user input before it reaches the registry.
// It holds no state beyond the shared validator instance.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom tags & texts
	identifierTag  = "identifier"
	identifierText = "must contain only letters and digits"

	scoreTag  = "score"
	scoreText = "must be a number between 0 and 100"

	notBlankTag  = "notblank"
	notBlankText = "cannot be blank"

	requiredTag  = "required"
	requiredText = "this field is required"
)

func init() {
	Validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use yaml (then json) tag names in errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"yaml", "json"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = Validate.RegisterValidation(notBlankTag, notBlankValidation)
	Validate.RegisterAlias(identifierTag, "required,alphanum")
	Validate.RegisterAlias(scoreTag, "gte=0,lte=100")

	registerCustomTranslation(identifierTag, identifierText)
	registerCustomTranslation(scoreTag, scoreText)
	registerCustomTranslation(notBlankTag, notBlankText)
	registerCustomTranslation(requiredTag, requiredText)
}

func registerCustomTranslation(tag, text string) {
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// notBlankValidation rejects strings that are empty after trimming.
func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

// StudentID checks that id is non-empty and alphanumeric.
func StudentID(id string) error {
	return check("student_id", id, identifierTag)
}

// CourseCode checks that code is non-empty and alphanumeric.
func CourseCode(code string) error {
	return check("course_code", code, identifierTag)
}

// Name checks that name is not blank.
func Name(name string) error {
	return check("name", name, notBlankTag)
}

// Score checks that score lies in [0, 100]. NaN is rejected.
func Score(score float64) error {
	return check("score", score, scoreTag)
}

// Struct validates a tagged struct and converts failures to a *ValidationError.
func Struct(v any) error {
	return convert(Validate.Struct(v), "")
}

// Join combines several checks into one *ValidationError, or returns nil.
func Join(errs ...error) error {
	var out ValidationError
	for _, err := range errs {
		var ve *ValidationError
		if errors.As(err, &ve) {
			out.Fields = append(out.Fields, ve.Fields...)
		} else if err != nil {
			return err
		}
	}
	if len(out.Fields) == 0 {
		return nil
	}
	return &out
}

func check(field string, value any, tag string) error {
	return convert(Validate.Var(value, tag), field)
}

func convert(err error, field string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		name := field
		if name == "" {
			name = fieldPath(fe.Namespace())
		}
		out.Fields = append(out.Fields, FieldError{Field: name, Error: fe.Translate(Translator)})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
