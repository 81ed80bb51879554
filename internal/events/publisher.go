package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// TopicCourseEvents carries every course record mutation.
const TopicCourseEvents = "course.events"

const (
	EventCourseCreated = "course.created"
	EventCourseUpdated = "course.updated"
	EventCourseDeleted = "course.deleted"
)

// CourseEvent is the payload published after a successful mutation.
type CourseEvent struct {
	Type       string    `json:"type"`
	CourseID   uint      `json:"course_id"`
	Semester   string    `json:"semester"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes course mutation events. Publishing is
// fire-and-forget: failures are logged by callers, never surfaced to the
// client.
type EventPublisher interface {
	PublishCourseEvent(ctx context.Context, event *CourseEvent) error
	Close() error
}

type watermillPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
}

// NewEventPublisher returns a Kafka-backed publisher when brokers are
// configured and an in-process gochannel publisher otherwise.
func NewEventPublisher(brokers []string, logger *slog.Logger) (EventPublisher, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	if len(brokers) == 0 {
		pubSub := gochannel.NewGoChannel(gochannel.Config{}, wmLogger)
		return &watermillPublisher{publisher: pubSub, logger: logger}, nil
	}

	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   brokers,
		Marshaler: kafka.DefaultMarshaler{},
	}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	return &watermillPublisher{publisher: publisher, logger: logger}, nil
}

func (p *watermillPublisher) PublishCourseEvent(ctx context.Context, event *CourseEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal course event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := p.publisher.Publish(TopicCourseEvents, msg); err != nil {
		return fmt.Errorf("failed to publish course event: %w", err)
	}

	p.logger.Debug("Published course event", "type", event.Type, "course_id", event.CourseID)
	return nil
}

func (p *watermillPublisher) Close() error {
	return p.publisher.Close()
}

// MockEventPublisher records events for tests.
type MockEventPublisher struct {
	mu     sync.Mutex
	events []*CourseEvent
	logger *slog.Logger
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (m *MockEventPublisher) PublishCourseEvent(ctx context.Context, event *CourseEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockEventPublisher) Close() error {
	return nil
}

func (m *MockEventPublisher) GetPublishedEvents() []*CourseEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*CourseEvent, len(m.events))
	copy(out, m.events)
	return out
}
