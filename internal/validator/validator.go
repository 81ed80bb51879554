package validator

import (
	"strings"

	"github.com/SAP-F-2025/transcript-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator wraps the struct validator and the business validator so
// consumers depend on a single entry point.
type Validator struct {
	validate *validator.Validate
	business *BusinessValidator
}

func New() *Validator {
	validate := validator.New()
	registerCustomRules(validate)

	return &Validator{
		validate: validate,
		business: NewBusinessValidator(validate),
	}
}

// ValidateStruct validates tag-level rules on any struct.
func (v *Validator) ValidateStruct(s interface{}) ValidationErrors {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

func (v *Validator) GetBusinessValidator() *BusinessValidator {
	return v.business
}

// registerCustomRules installs the domain validation rules shared by all
// request DTOs.
func registerCustomRules(validate *validator.Validate) {
	// Grade must be a member of the closed enumeration.
	validate.RegisterValidation("course_grade", func(fl validator.FieldLevel) bool {
		return models.Grade(fl.Field().String()).Valid()
	})

	// Required string fields must contain more than whitespace.
	validate.RegisterValidation("not_blank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}
