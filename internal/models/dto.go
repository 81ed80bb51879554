package models

import "time"

// ===== AGGREGATION RESPONSES =====

// CGPAResponse is the unit-weighted grade-point average over a record set.
// Semester is nil for the overall CGPA and carries the filter string for a
// semester-scoped GPA. It is recomputed on every request, never persisted.
type CGPAResponse struct {
	CGPA             float64 `json:"cgpa"`
	TotalUnits       int     `json:"totalUnits"`
	TotalGradePoints int     `json:"totalGradePoints"`
	Semester         *string `json:"semester"`
}

// ===== ERROR RESPONSES =====

type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ===== HEALTH =====

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}
