package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// BusinessValidator handles business rule validation for course records.
type BusinessValidator struct {
	validate *validator.Validate
}

func NewBusinessValidator(validate *validator.Validate) *BusinessValidator {
	return &BusinessValidator{validate: validate}
}

// Validate validates tag-level rules for any struct.
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	if err := bv.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateCourseCreate validates course record creation.
func (bv *BusinessValidator) ValidateCourseCreate(req *CourseCreateRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)
	errors = append(errors, bv.validateCourseFields(req.Semester, req.CourseName)...)

	return errors
}

// ValidateCourseUpdate validates course record updates. Updates replace all
// mutable fields, so the rules are identical to creation.
func (bv *BusinessValidator) ValidateCourseUpdate(req *CourseUpdateRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)
	errors = append(errors, bv.validateCourseFields(req.Semester, req.CourseName)...)

	return errors
}

// validateCourseFields covers rules the tag validators cannot express on
// their own, currently overly long free-text labels.
func (bv *BusinessValidator) validateCourseFields(semester, courseName string) ValidationErrors {
	var errors ValidationErrors

	if len(strings.TrimSpace(semester)) > 100 {
		errors = append(errors, ValidationError{
			Field:   "semester",
			Message: "must not exceed 100 characters",
			Value:   semester,
			Rule:    "max_length",
		})
	}

	if len(strings.TrimSpace(courseName)) > 200 {
		errors = append(errors, ValidationError{
			Field:   "courseName",
			Message: "must not exceed 200 characters",
			Value:   courseName,
			Rule:    "max_length",
		})
	}

	return errors
}
