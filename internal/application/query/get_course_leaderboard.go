package query

import (
	"context"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/ranking"
	"github.com/progress-hub/learning-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET COURSE LEADERBOARD QUERY
// ══════════════════════════════════════════════════════════════════════════════

// GetCourseLeaderboardQuery requests the per-course student table.
type GetCourseLeaderboardQuery struct {
	// Course is the course name, matched case-insensitively.
	Course string
}

// GetCourseLeaderboardResult contains the leaderboard of one course.
type GetCourseLeaderboardResult struct {
	// Course is the resolved course identifier.
	Course course.ID

	// RequiredCredits is the course completion threshold.
	RequiredCredits int

	// Rows lists students with a nonzero grade in the course, sorted
	// by grade descending, ties broken by ascending identifier.
	Rows []ranking.Row
}

// GetCourseLeaderboardHandler handles the GetCourseLeaderboardQuery.
type GetCourseLeaderboardHandler struct {
	catalog     *course.Catalog
	studentRepo student.Repository
}

// NewGetCourseLeaderboardHandler creates a new GetCourseLeaderboardHandler.
func NewGetCourseLeaderboardHandler(
	catalog *course.Catalog,
	studentRepo student.Repository,
) *GetCourseLeaderboardHandler {
	return &GetCourseLeaderboardHandler{
		catalog:     catalog,
		studentRepo: studentRepo,
	}
}

// Handle executes the query. Returns shared.ErrUnknownCourse for a name
// outside the closed catalog.
func (h *GetCourseLeaderboardHandler) Handle(ctx context.Context, q GetCourseLeaderboardQuery) (*GetCourseLeaderboardResult, error) {
	id, err := course.ParseID(q.Course)
	if err != nil {
		return nil, err
	}

	students := make([]*student.Student, 0)
	for s := range h.studentRepo.All(ctx) {
		students = append(students, s)
	}

	c := h.catalog.Course(id)
	return &GetCourseLeaderboardResult{
		Course:          id,
		RequiredCredits: c.RequiredCredits(),
		Rows:            ranking.Leaderboard(c, students),
	}, nil
}
