// Package presenter formats data for console display.
// Presenters handle the conversion from domain objects and query
// results to the exact lines the session prints; the core itself
// never formats text.
package presenter

import (
	"fmt"
	"strings"

	"github.com/progress-hub/learning-tracker/internal/application/query"
	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/notification"
	"github.com/progress-hub/learning-tracker/internal/domain/ranking"
)

// ─────────────────────────────────────────────────────────────────────────────
// STUDENT GRADES
// ─────────────────────────────────────────────────────────────────────────────

// StudentGrades форматирует строку накопленных баллов студента.
func StudentGrades(res *query.FindStudentResult) string {
	parts := make([]string, 0, course.Count)
	for _, id := range course.IDs() {
		parts = append(parts, fmt.Sprintf("%s=%d", id, res.Grades[id]))
	}
	return fmt.Sprintf("%s points: %s", res.StudentID, strings.Join(parts, "; "))
}

// ─────────────────────────────────────────────────────────────────────────────
// COURSE RANKINGS
// ─────────────────────────────────────────────────────────────────────────────

// Rankings форматирует блок сравнительной статистики курсов.
func Rankings(o ranking.Overview) string {
	var sb strings.Builder
	sb.WriteString("Most popular: " + o.MostPopular.Render() + "\n")
	sb.WriteString("Least popular: " + o.LeastPopular.Render() + "\n")
	sb.WriteString("Highest activity: " + o.HighestActivity.Render() + "\n")
	sb.WriteString("Lowest activity: " + o.LowestActivity.Render() + "\n")
	sb.WriteString("Easiest course: " + o.Easiest.Render() + "\n")
	sb.WriteString("Hardest course: " + o.Hardest.Render())
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// COURSE LEADERBOARD
// ─────────────────────────────────────────────────────────────────────────────

// Leaderboard форматирует таблицу студентов курса.
func Leaderboard(res *query.GetCourseLeaderboardResult) string {
	var sb strings.Builder
	sb.WriteString(res.Course.String() + "\n")
	sb.WriteString("id     points    completed")
	for _, row := range res.Rows {
		sb.WriteString(fmt.Sprintf("\n%-6s %-9d %.1f%%", row.StudentID, row.Points, row.Completed))
	}
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// NOTIFICATIONS
// ─────────────────────────────────────────────────────────────────────────────

// NotificationMessage форматирует текст уведомления о завершении курса.
func NotificationMessage(n *notification.Notification) string {
	return fmt.Sprintf(
		"To: %s\nRe: Your Learning Progress\nHello, %s! You have accomplished our %s course!",
		n.Student.Email,
		n.Student.FullName(),
		n.Course.Name(),
	)
}

// TotalNotified форматирует итоговую строку батча доставки.
func TotalNotified(students int) string {
	return fmt.Sprintf("Total %d students have been notified.", students)
}
