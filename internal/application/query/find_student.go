package query

import (
	"context"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// FIND STUDENT QUERY
// ══════════════════════════════════════════════════════════════════════════════

// FindStudentQuery requests the cumulative grades of one student.
type FindStudentQuery struct {
	// StudentID is the identifier to look up. Non-numeric input is
	// reported as "not found", not as a parse error.
	StudentID string
}

// FindStudentResult contains a student's cumulative per-course grades.
type FindStudentResult struct {
	// StudentID is the identifier of the student.
	StudentID student.ID

	// Grades holds cumulative points per course in catalog order.
	Grades [course.Count]int
}

// FindStudentHandler handles the FindStudentQuery.
type FindStudentHandler struct {
	studentRepo student.Repository
}

// NewFindStudentHandler creates a new FindStudentHandler.
func NewFindStudentHandler(studentRepo student.Repository) *FindStudentHandler {
	return &FindStudentHandler{studentRepo: studentRepo}
}

// Handle executes the query. Returns shared.ErrStudentNotFound for an
// unknown or malformed identifier; no state changes either way.
func (h *FindStudentHandler) Handle(ctx context.Context, q FindStudentQuery) (*FindStudentResult, error) {
	stud, err := h.studentRepo.GetByID(ctx, student.ID(q.StudentID))
	if err != nil {
		return nil, err
	}
	return &FindStudentResult{
		StudentID: stud.ID,
		Grades:    stud.Grades(),
	}, nil
}
