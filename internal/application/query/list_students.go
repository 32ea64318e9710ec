// Package query contains read operations (CQRS - Queries).
// Queries never mutate state and compute their results fresh per call.
package query

import (
	"context"

	"github.com/progress-hub/learning-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST STUDENTS QUERY
// ══════════════════════════════════════════════════════════════════════════════

// ListStudentsQuery requests the identifiers of all registered students.
type ListStudentsQuery struct{}

// ListStudentsResult contains the registered students in registration order.
type ListStudentsResult struct {
	// IDs holds the student identifiers in registration order.
	IDs []student.ID

	// Total is the number of registered students.
	Total int
}

// ListStudentsHandler handles the ListStudentsQuery.
type ListStudentsHandler struct {
	studentRepo student.Repository
}

// NewListStudentsHandler creates a new ListStudentsHandler.
func NewListStudentsHandler(studentRepo student.Repository) *ListStudentsHandler {
	return &ListStudentsHandler{studentRepo: studentRepo}
}

// Handle executes the query.
func (h *ListStudentsHandler) Handle(ctx context.Context, q ListStudentsQuery) (*ListStudentsResult, error) {
	result := &ListStudentsResult{IDs: make([]student.ID, 0)}
	for s := range h.studentRepo.All(ctx) {
		result.IDs = append(result.IDs, s.ID)
	}
	result.Total = len(result.IDs)
	return result, nil
}
