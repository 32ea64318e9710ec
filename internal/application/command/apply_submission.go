package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/notification"
	"github.com/progress-hub/learning-tracker/internal/domain/shared"
	"github.com/progress-hub/learning-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// APPLY SUBMISSION COMMAND
// Applies a multi-course submission to a student's cumulative state,
// mirrors the activity into the catalog and consults the notification
// pipeline for newly reached completion thresholds.
// ══════════════════════════════════════════════════════════════════════════════

// ApplySubmissionCommand contains one submission: a score per course,
// paired positionally with the catalog order.
type ApplySubmissionCommand struct {
	// StudentID is the identifier of the submitting student.
	StudentID string

	// Scores holds one non-negative score per course in catalog order.
	// A zero score means no activity in that course.
	Scores [course.Count]int

	// CorrelationID for tracing. Generated when empty.
	CorrelationID string
}

// Validate validates the command.
func (c ApplySubmissionCommand) Validate() error {
	if c.StudentID == "" {
		return shared.ErrStudentNotFound
	}
	for _, score := range c.Scores {
		if score < 0 {
			return shared.ErrNegativeScore
		}
	}
	return nil
}

// CourseUpdate describes the effect of the submission on one course.
type CourseUpdate struct {
	// Course is the updated course.
	Course course.ID

	// Score is the submitted score for the course.
	Score int

	// NewTotal is the student's cumulative grade after the update.
	NewTotal int

	// FirstSubmission is true when this was the student's first
	// accepted submission in the course (triggers enrollment).
	FirstSubmission bool
}

// ApplySubmissionResult contains the result of applying a submission.
type ApplySubmissionResult struct {
	// StudentID is the identifier of the student.
	StudentID student.ID

	// Updates lists the courses touched by the submission, in catalog
	// order. Courses with a zero score do not appear.
	Updates []CourseUpdate

	// Completions lists the courses whose completion threshold was
	// reached for the first time by this submission.
	Completions []course.ID

	// CorrelationID is the correlation ID used for tracing.
	CorrelationID string
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// ApplySubmissionHandler handles the ApplySubmissionCommand.
type ApplySubmissionHandler struct {
	studentRepo    student.Repository
	catalog        *course.Catalog
	pipeline       *notification.Pipeline
	eventPublisher shared.EventPublisher
}

// NewApplySubmissionHandler creates a new ApplySubmissionHandler.
func NewApplySubmissionHandler(
	studentRepo student.Repository,
	catalog *course.Catalog,
	pipeline *notification.Pipeline,
	eventPublisher shared.EventPublisher,
) *ApplySubmissionHandler {
	return &ApplySubmissionHandler{
		studentRepo:    studentRepo,
		catalog:        catalog,
		pipeline:       pipeline,
		eventPublisher: eventPublisher,
	}
}

// Handle executes the submission. Validation and the student lookup
// happen before any mutation, so a failing call leaves every store
// unchanged. Courses are applied independently: a zero score is a
// complete no-op for that course.
func (h *ApplySubmissionHandler) Handle(ctx context.Context, cmd ApplySubmissionCommand) (*ApplySubmissionResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	correlationID := cmd.CorrelationID
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	stud, err := h.studentRepo.GetByID(ctx, student.ID(cmd.StudentID))
	if err != nil {
		return nil, err
	}

	result := &ApplySubmissionResult{
		StudentID:     stud.ID,
		Updates:       make([]CourseUpdate, 0, course.Count),
		Completions:   make([]course.ID, 0),
		CorrelationID: correlationID,
	}

	for _, id := range course.IDs() {
		score := cmd.Scores[id]
		if score <= 0 {
			continue
		}

		first := stud.Apply(id, score)
		if first {
			h.catalog.Enroll(id, stud.ID.String())
		}
		h.catalog.AddActivity(id, score)

		result.Updates = append(result.Updates, CourseUpdate{
			Course:          id,
			Score:           score,
			NewTotal:        stud.Grade(id),
			FirstSubmission: first,
		})

		h.checkCompletion(stud, id, correlationID, result)
	}

	if h.eventPublisher != nil && len(result.Updates) > 0 {
		courses := make([]string, 0, len(result.Updates))
		for _, u := range result.Updates {
			courses = append(courses, u.Course.String())
		}
		event := shared.NewPointsSubmittedEvent(stud.ID.String(), courses)
		event.BaseEvent = event.BaseEvent.WithCorrelationID(correlationID)
		_ = h.eventPublisher.Publish(event)
	}

	return result, nil
}

// checkCompletion consults the notification pipeline right after the
// course update. The pipeline enforces the at-most-once rule per
// (student, course) pair; crossing an already crossed threshold again
// produces nothing.
func (h *ApplySubmissionHandler) checkCompletion(
	stud *student.Student,
	id course.ID,
	correlationID string,
	result *ApplySubmissionResult,
) {
	c := h.catalog.Course(id)
	if stud.Grade(id) < c.RequiredCredits() {
		return
	}

	if _, created := h.pipeline.Offer(stud, c); !created {
		return
	}
	result.Completions = append(result.Completions, id)

	if h.eventPublisher != nil {
		event := shared.NewCourseCompletedEvent(stud.ID.String(), c.Name())
		event.BaseEvent = event.BaseEvent.WithCorrelationID(correlationID)
		_ = h.eventPublisher.Publish(event)
	}
}
