package models

import "testing"

func TestGradePoints(t *testing.T) {
	tests := []struct {
		grade Grade
		want  int
	}{
		{GradeA, 5},
		{GradeB, 4},
		{GradeC, 3},
		{GradeD, 2},
		{GradeE, 1},
		{GradeF, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.grade), func(t *testing.T) {
			if got := tt.grade.Points(); got != tt.want {
				t.Errorf("Points() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGradeValid(t *testing.T) {
	for _, grade := range AllGrades() {
		if !grade.Valid() {
			t.Errorf("Valid() = false for enumeration member %q", grade)
		}
	}

	invalid := []Grade{"G", "a", "AB", "", " ", "1"}
	for _, grade := range invalid {
		if grade.Valid() {
			t.Errorf("Valid() = true for %q, want false", grade)
		}
	}
}

func TestCourseRecordTableName(t *testing.T) {
	if got := (CourseRecord{}).TableName(); got != "course_records" {
		t.Errorf("TableName() = %q, want course_records", got)
	}
}
