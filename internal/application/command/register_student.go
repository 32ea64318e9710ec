// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/progress-hub/learning-tracker/internal/domain/shared"
	"github.com/progress-hub/learning-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER STUDENT COMMAND
// Registers a new student: validates credentials, enforces email
// uniqueness and assigns the next sequential identifier.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterStudentCommand contains the data to register a student.
type RegisterStudentCommand struct {
	// FirstName is the student's first name.
	FirstName string

	// LastName is the student's last name (may contain several words).
	LastName string

	// Email is the student's email address, unique across students.
	Email string

	// CorrelationID for tracing. Generated when empty.
	CorrelationID string
}

// Validate validates the command shape. Grammar checks happen in the
// domain layer on construction.
func (c RegisterStudentCommand) Validate() error {
	if c.FirstName == "" || c.LastName == "" || c.Email == "" {
		return errors.New("register_student: first name, last name and email are required")
	}
	return nil
}

// RegisterStudentResult contains the result of a successful registration.
type RegisterStudentResult struct {
	// StudentID is the newly assigned identifier.
	StudentID student.ID

	// Email is the registered email address.
	Email student.Email

	// RegisteredAt is when the student was registered.
	RegisteredAt time.Time

	// CorrelationID is the correlation ID used for tracing.
	CorrelationID string
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// RegisterStudentHandler handles the RegisterStudentCommand.
type RegisterStudentHandler struct {
	studentRepo    student.Repository
	eventPublisher shared.EventPublisher
}

// NewRegisterStudentHandler creates a new RegisterStudentHandler.
func NewRegisterStudentHandler(
	studentRepo student.Repository,
	eventPublisher shared.EventPublisher,
) *RegisterStudentHandler {
	return &RegisterStudentHandler{
		studentRepo:    studentRepo,
		eventPublisher: eventPublisher,
	}
}

// Handle executes the registration. On any failure the registry is left
// unchanged and no identifier is consumed.
func (h *RegisterStudentHandler) Handle(ctx context.Context, cmd RegisterStudentCommand) (*RegisterStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("student", "Register", shared.ErrValidation, "incorrect credentials", err)
	}

	correlationID := cmd.CorrelationID
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	stud, err := student.New(
		student.Name(cmd.FirstName),
		student.Name(cmd.LastName),
		student.Email(cmd.Email),
	)
	if err != nil {
		return nil, err
	}

	if err := h.studentRepo.Create(ctx, stud); err != nil {
		return nil, err
	}

	if h.eventPublisher != nil {
		event := shared.NewStudentRegisteredEvent(stud.ID.String(), stud.Email.String())
		event.BaseEvent = event.BaseEvent.WithCorrelationID(correlationID)
		_ = h.eventPublisher.Publish(event)
	}

	return &RegisterStudentResult{
		StudentID:     stud.ID,
		Email:         stud.Email,
		RegisteredAt:  stud.RegisteredAt,
		CorrelationID: correlationID,
	}, nil
}
