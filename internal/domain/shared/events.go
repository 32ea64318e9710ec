// Package shared contains common domain types, errors and events
// that are used across all domain packages.
package shared

import (
	"context"
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something significant
// that happened during the tracking session.
const (
	// Student events
	EventStudentRegistered EventType = "student.registered"

	// Progress events
	EventPointsSubmitted EventType = "progress.points_submitted"
	EventCourseCompleted EventType = "progress.course_completed"

	// Notification events
	EventNotificationQueued    EventType = "notification.queued"
	EventNotificationDelivered EventType = "notification.delivered"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for serialization.
	Payload() map[string]interface{}
}

// EventHandler processes a published event.
type EventHandler func(ctx context.Context, event Event) error

// EventPublisher publishes domain events to subscribers.
type EventPublisher interface {
	Publish(event Event) error
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type          EventType `json:"type"`
	Timestamp     time.Time `json:"timestamp"`
	AggregateId   string    `json:"aggregate_id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
}

// EventType implements the Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements the Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements the Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// WithCorrelationID returns a copy of the event with the correlation ID set.
func (e BaseEvent) WithCorrelationID(id string) BaseEvent {
	e.CorrelationID = id
	return e
}

// NewBaseEvent creates a BaseEvent with the current UTC timestamp.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
	}
}

// StudentRegisteredEvent is emitted when a new student is registered.
type StudentRegisteredEvent struct {
	BaseEvent
	StudentID string
	Email     string
}

// NewStudentRegisteredEvent creates a StudentRegisteredEvent.
func NewStudentRegisteredEvent(studentID, email string) StudentRegisteredEvent {
	return StudentRegisteredEvent{
		BaseEvent: NewBaseEvent(EventStudentRegistered, studentID),
		StudentID: studentID,
		Email:     email,
	}
}

// Payload implements the Event interface.
func (e StudentRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id": e.StudentID,
		"email":      e.Email,
	}
}

// PointsSubmittedEvent is emitted when a submission has been applied.
type PointsSubmittedEvent struct {
	BaseEvent
	StudentID string
	Courses   []string // names of the courses touched by the submission
}

// NewPointsSubmittedEvent creates a PointsSubmittedEvent.
func NewPointsSubmittedEvent(studentID string, courses []string) PointsSubmittedEvent {
	return PointsSubmittedEvent{
		BaseEvent: NewBaseEvent(EventPointsSubmitted, studentID),
		StudentID: studentID,
		Courses:   courses,
	}
}

// Payload implements the Event interface.
func (e PointsSubmittedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id": e.StudentID,
		"courses":    e.Courses,
	}
}

// CourseCompletedEvent is emitted when a student crosses the
// required-credit threshold of a course for the first time.
type CourseCompletedEvent struct {
	BaseEvent
	StudentID string
	Course    string
}

// NewCourseCompletedEvent creates a CourseCompletedEvent.
func NewCourseCompletedEvent(studentID, courseName string) CourseCompletedEvent {
	return CourseCompletedEvent{
		BaseEvent: NewBaseEvent(EventCourseCompleted, studentID),
		StudentID: studentID,
		Course:    courseName,
	}
}

// Payload implements the Event interface.
func (e CourseCompletedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id": e.StudentID,
		"course":     e.Course,
	}
}

// NotificationDeliveredEvent is emitted for each notification drained
// from the pending queue.
type NotificationDeliveredEvent struct {
	BaseEvent
	NotificationID string
	StudentID      string
	Course         string
}

// NewNotificationDeliveredEvent creates a NotificationDeliveredEvent.
func NewNotificationDeliveredEvent(notificationID, studentID, courseName string) NotificationDeliveredEvent {
	return NotificationDeliveredEvent{
		BaseEvent:      NewBaseEvent(EventNotificationDelivered, studentID),
		NotificationID: notificationID,
		StudentID:      studentID,
		Course:         courseName,
	}
}

// Payload implements the Event interface.
func (e NotificationDeliveredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"notification_id": e.NotificationID,
		"student_id":      e.StudentID,
		"course":          e.Course,
	}
}
