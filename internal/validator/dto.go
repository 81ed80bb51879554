package validator

import "github.com/SAP-F-2025/transcript-service/internal/models"

// CourseCreateRequest represents the request structure for creating course records
type CourseCreateRequest struct {
	Semester   string       `json:"semester" validate:"required,not_blank"`
	CourseName string       `json:"courseName" validate:"required,not_blank"`
	Unit       int          `json:"unit" validate:"required,gt=0"`
	Grade      models.Grade `json:"grade" validate:"required,course_grade"`
}

// CourseUpdateRequest represents the request structure for updating course records.
// Updates are full replacements: every mutable field must be supplied and is
// validated with the same rules as creation. The record id is immutable.
type CourseUpdateRequest struct {
	Semester   string       `json:"semester" validate:"required,not_blank"`
	CourseName string       `json:"courseName" validate:"required,not_blank"`
	Unit       int          `json:"unit" validate:"required,gt=0"`
	Grade      models.Grade `json:"grade" validate:"required,course_grade"`
}
