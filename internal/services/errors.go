package services

import (
	"errors"

	"github.com/SAP-F-2025/transcript-service/internal/validator"
)

var (
	// ErrCourseNotFound is returned when no course record exists for an id.
	ErrCourseNotFound = errors.New("course record not found")

	// ErrNoRecordsForSemester is returned when a semester-scoped GPA is
	// requested and the semester has no records. An empty overall CGPA is
	// a zero-valued result instead; the asymmetry is intentional.
	ErrNoRecordsForSemester = errors.New("no records found for semester")
)

// ValidationErrors surfaces field-level validation failures to handlers.
type ValidationErrors = validator.ValidationErrors
