package services

import (
	"context"
	"testing"

	"github.com/SAP-F-2025/transcript-service/internal/events"
	"github.com/SAP-F-2025/transcript-service/internal/validator"
)

func TestServiceManagerLifecycle(t *testing.T) {
	sm := NewServiceManager(nil, newMockRepository(), nil, testLogger(), validator.New(), events.NewMockEventPublisher(testLogger()))
	ctx := context.Background()

	if err := sm.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck() before Initialize() = nil, want error")
	}

	if err := sm.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := sm.Initialize(ctx); err != nil {
		t.Errorf("second Initialize() error = %v, want idempotent nil", err)
	}

	if sm.Course() == nil || sm.GPA() == nil || sm.Export() == nil {
		t.Error("services not constructed after Initialize()")
	}

	if err := sm.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	if err := sm.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := sm.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck() after Shutdown() = nil, want error")
	}
}
