package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/zeroclick/ddg/internal/instantanswer"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("zcifield", isZCIField); err != nil {
		return nil, nil, fmt.Errorf("failed to register zcifield validation: %w", err)
	}
	if err := validate.RegisterTranslation("zcifield", trans, func(ut ut.Translator) error {
		return ut.Add("zcifield", "{0} must be one of answer, abstract, definition, results.N or related.N", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("zcifield", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register zcifield translation: %w", err)
	}

	return validate, trans, nil
}

func isZCIField(fl validator.FieldLevel) bool {
	return instantanswer.ValidField(fl.Field().String())
}
