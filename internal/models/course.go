package models

import (
	"time"

	"gorm.io/gorm"
)

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"
)

// gradePoints is the fixed grade-to-point scale. Grades outside this map
// are rejected at validation time and never reach aggregation.
var gradePoints = map[Grade]int{
	GradeA: 5,
	GradeB: 4,
	GradeC: 3,
	GradeD: 2,
	GradeE: 1,
	GradeF: 0,
}

// Points returns the grade point for the letter grade, 0 for unknown grades.
func (g Grade) Points() int {
	return gradePoints[g]
}

// Valid reports whether the grade is a member of the closed enumeration.
func (g Grade) Valid() bool {
	_, ok := gradePoints[g]
	return ok
}

// AllGrades lists the enumeration in scale order, highest first.
func AllGrades() []Grade {
	return []Grade{GradeA, GradeB, GradeC, GradeD, GradeE, GradeF}
}

type CourseRecord struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Semester   string `json:"semester" gorm:"not null;size:100;index" validate:"required"`
	CourseName string `json:"courseName" gorm:"not null;size:200" validate:"required"`
	Unit       int    `json:"unit" gorm:"not null" validate:"required,gt=0"`
	Grade      Grade  `json:"grade" gorm:"not null;size:1" validate:"required,course_grade"`

	// Derived from Grade on every read/write, never persisted.
	GradePoint int `json:"gradePoint" gorm:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (CourseRecord) TableName() string {
	return "course_records"
}

func (c *CourseRecord) AfterFind(tx *gorm.DB) error {
	c.GradePoint = c.Grade.Points()
	return nil
}

func (c *CourseRecord) AfterCreate(tx *gorm.DB) error {
	c.GradePoint = c.Grade.Points()
	return nil
}

func (c *CourseRecord) AfterUpdate(tx *gorm.DB) error {
	c.GradePoint = c.Grade.Points()
	return nil
}
