package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var customValidators = map[string]validator.Func{
	"asset_type":     isAssetType,
	"project_folder": isProjectFolder,
}

var customTranslations = map[string]string{
	"asset_type":     "{0} must only contain lowercase and uppercase letters: {1}",
	"project_folder": "{0} must be a folder whose name only includes alphanumeric, \"_\" and \"-\" characters: {1}",
	"oneof":          "{0} must be one of [{1}]",
}

type ValidationError struct {
	Field  string
	Detail string
}

type ValidationErrors []ValidationError

func NewValidationError(key, detail string) error {
	return &ValidationError{
		Field:  key,
		Detail: detail,
	}
}

func (e *ValidationError) Error() string {
	return e.Detail
}

func (ve ValidationErrors) Error() string {
	msg := "validation error\n"
	for _, err := range ve {
		msg += err.Detail + "\n"
	}
	return msg
}

// Validator wraps a validator instance and a translator.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewValidator returns a validator that names fields by their "cli" tag
// and speaks English.
func NewValidator() (*Validator, error) {
	validate := validator.New()
	validate.RegisterTagNameFunc(cliFieldName)

	enLocale := en.New()
	trans, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		return nil, errors.New("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}
	for tag, message := range customTranslations {
		if err := validate.RegisterTranslation(tag, trans, addTranslation(tag, message), translateField(tag)); err != nil {
			return nil, fmt.Errorf("failed to register custom translation for %s: %w", tag, err)
		}
	}
	for name, fn := range customValidators {
		if err := validate.RegisterValidation(name, fn); err != nil {
			return nil, err
		}
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// cliFieldName reports a field by its flag name, e.g. "--asset".
func cliFieldName(fld reflect.StructField) string {
	if name := fld.Tag.Get("cli"); name != "" {
		return name
	}
	return fld.Name
}

func addTranslation(tag, message string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		return trans.Add(tag, message, true)
	}
}

// translateField fills {0} with the field and {1} with the offending value,
// or with the allowed values for oneof.
func translateField(tag string) validator.TranslationFunc {
	return func(trans ut.Translator, fe validator.FieldError) string {
		arg := fmt.Sprintf("%v", fe.Value())
		if fe.Tag() == "oneof" {
			arg = fe.Param()
		}
		text, _ := trans.T(tag, fe.Field(), arg)
		return text
	}
}

// Struct validates s. Failures come back as one error listing every
// translated message; it still unwraps to validator.ValidationErrors.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var msg strings.Builder
	for _, fe := range fieldErrs {
		msg.WriteString(fe.Translate(v.trans))
		msg.WriteString("\n")
	}
	return fmt.Errorf("validation error:\n%s: %w", msg.String(), fieldErrs)
}

// ParseValidationErrors flattens err into field/detail pairs. Errors that
// did not come from Struct yield an empty list.
func (v *Validator) ParseValidationErrors(err error) ValidationErrors {
	parsed := ValidationErrors{}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return parsed
	}
	for _, fe := range fieldErrs {
		parsed = append(parsed, ValidationError{
			Field:  fe.StructNamespace(),
			Detail: fe.Translate(v.trans),
		})
	}
	return parsed
}
