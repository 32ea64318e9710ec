package query

import (
	"context"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/ranking"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET COURSE RANKINGS QUERY
// Comparative statistics across courses: popularity, activity and
// difficulty extremes. Computed fresh on every call.
// ══════════════════════════════════════════════════════════════════════════════

// GetCourseRankingsQuery requests the comparative course statistics.
type GetCourseRankingsQuery struct{}

// GetCourseRankingsResult wraps the six ranking rows.
type GetCourseRankingsResult struct {
	// Overview contains the six comparative results.
	Overview ranking.Overview
}

// GetCourseRankingsHandler handles the GetCourseRankingsQuery.
type GetCourseRankingsHandler struct {
	catalog *course.Catalog
}

// NewGetCourseRankingsHandler creates a new GetCourseRankingsHandler.
func NewGetCourseRankingsHandler(catalog *course.Catalog) *GetCourseRankingsHandler {
	return &GetCourseRankingsHandler{catalog: catalog}
}

// Handle executes the query.
func (h *GetCourseRankingsHandler) Handle(ctx context.Context, q GetCourseRankingsQuery) (*GetCourseRankingsResult, error) {
	return &GetCourseRankingsResult{
		Overview: ranking.BuildOverview(h.catalog),
	}, nil
}
