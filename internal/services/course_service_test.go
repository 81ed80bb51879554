package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SAP-F-2025/transcript-service/internal/events"
	"github.com/SAP-F-2025/transcript-service/internal/models"
	"github.com/SAP-F-2025/transcript-service/internal/validator"
)

func newTestCourseService() (CourseService, *mockRepository, *events.MockEventPublisher) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	service := NewCourseService(repo, nil, testLogger(), validator.New(), publisher)
	return service, repo, publisher
}

func TestCourseService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateCourseRequest
		wantErr bool
	}{
		{
			name: "valid record",
			req:  CreateCourseRequest{Semester: "Fall 2024", CourseName: "Algorithms", Unit: 3, Grade: models.GradeA},
		},
		{
			name:    "zero unit",
			req:     CreateCourseRequest{Semester: "Fall 2024", CourseName: "Algorithms", Unit: 0, Grade: models.GradeA},
			wantErr: true,
		},
		{
			name:    "negative unit",
			req:     CreateCourseRequest{Semester: "Fall 2024", CourseName: "Algorithms", Unit: -2, Grade: models.GradeA},
			wantErr: true,
		},
		{
			name:    "blank course name",
			req:     CreateCourseRequest{Semester: "Fall 2024", CourseName: "   ", Unit: 3, Grade: models.GradeA},
			wantErr: true,
		},
		{
			name:    "blank semester",
			req:     CreateCourseRequest{Semester: "", CourseName: "Algorithms", Unit: 3, Grade: models.GradeA},
			wantErr: true,
		},
		{
			name:    "grade outside enumeration",
			req:     CreateCourseRequest{Semester: "Fall 2024", CourseName: "Algorithms", Unit: 3, Grade: models.Grade("G")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestCourseService()

			record, err := service.Create(context.Background(), &tt.req)
			if tt.wantErr {
				var validationErrors ValidationErrors
				if !errors.As(err, &validationErrors) {
					t.Fatalf("Create() error = %v, want ValidationErrors", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if record.ID == 0 {
				t.Error("Create() did not assign an id")
			}
			if record.GradePoint != record.Grade.Points() {
				t.Errorf("GradePoint = %d, want %d", record.GradePoint, record.Grade.Points())
			}
		})
	}
}

func TestCourseService_CreateThenGetRoundTrip(t *testing.T) {
	service, _, publisher := newTestCourseService()
	ctx := context.Background()

	created, err := service.Create(ctx, &CreateCourseRequest{
		Semester: "Fall 2024", CourseName: "Operating Systems", Unit: 4, Grade: models.GradeB,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	fetched, err := service.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if *fetched != *created {
		t.Errorf("round trip mismatch: got %+v, want %+v", fetched, created)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.EventCourseCreated {
		t.Errorf("published events = %+v, want one %s", published, events.EventCourseCreated)
	}
}

func TestCourseService_Update(t *testing.T) {
	service, _, publisher := newTestCourseService()
	ctx := context.Background()

	created, err := service.Create(ctx, &CreateCourseRequest{
		Semester: "Fall 2024", CourseName: "Algorithms", Unit: 3, Grade: models.GradeC,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("replaces all mutable fields and keeps id", func(t *testing.T) {
		updated, err := service.Update(ctx, created.ID, &UpdateCourseRequest{
			Semester: "Spring 2025", CourseName: "Advanced Algorithms", Unit: 4, Grade: models.GradeA,
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.ID != created.ID {
			t.Errorf("id changed: got %d, want %d", updated.ID, created.ID)
		}
		if updated.Semester != "Spring 2025" || updated.CourseName != "Advanced Algorithms" || updated.Unit != 4 || updated.Grade != models.GradeA {
			t.Errorf("Update() = %+v, fields not replaced", updated)
		}
		if updated.GradePoint != 5 {
			t.Errorf("GradePoint = %d, want 5", updated.GradePoint)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := service.Update(ctx, 9999, &UpdateCourseRequest{
			Semester: "Fall 2024", CourseName: "Ghost Course", Unit: 1, Grade: models.GradeB,
		})
		if !errors.Is(err, ErrCourseNotFound) {
			t.Errorf("Update() error = %v, want ErrCourseNotFound", err)
		}
	})

	t.Run("invalid fields are rejected", func(t *testing.T) {
		_, err := service.Update(ctx, created.ID, &UpdateCourseRequest{
			Semester: "Fall 2024", CourseName: "Algorithms", Unit: 0, Grade: models.GradeB,
		})
		var validationErrors ValidationErrors
		if !errors.As(err, &validationErrors) {
			t.Errorf("Update() error = %v, want ValidationErrors", err)
		}
	})

	published := publisher.GetPublishedEvents()
	if len(published) != 2 { // create + one successful update
		t.Errorf("published %d events, want 2", len(published))
	}
}

func TestCourseService_Delete(t *testing.T) {
	service, _, _ := newTestCourseService()
	ctx := context.Background()

	t.Run("unknown id is not found", func(t *testing.T) {
		if err := service.Delete(ctx, 42); !errors.Is(err, ErrCourseNotFound) {
			t.Errorf("Delete() error = %v, want ErrCourseNotFound", err)
		}
	})

	t.Run("deleted record is gone", func(t *testing.T) {
		created, err := service.Create(ctx, &CreateCourseRequest{
			Semester: "Fall 2024", CourseName: "Compilers", Unit: 3, Grade: models.GradeB,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if err := service.Delete(ctx, created.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := service.GetByID(ctx, created.ID); !errors.Is(err, ErrCourseNotFound) {
			t.Errorf("GetByID() after delete error = %v, want ErrCourseNotFound", err)
		}
	})
}

func TestCourseService_GetBySemester(t *testing.T) {
	service, _, _ := newTestCourseService()
	ctx := context.Background()

	if _, err := service.Create(ctx, &CreateCourseRequest{
		Semester: "Fall 2024", CourseName: "Algorithms", Unit: 3, Grade: models.GradeA,
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	records, err := service.GetBySemester(ctx, "Winter 2019")
	if err != nil {
		t.Fatalf("GetBySemester() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("GetBySemester() returned %d records, want empty result", len(records))
	}
}
