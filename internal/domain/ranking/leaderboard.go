package ranking

import (
	"math"
	"sort"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// COURSE LEADERBOARD
// ══════════════════════════════════════════════════════════════════════════════

// Row представляет одну строку таблицы курса.
type Row struct {
	// StudentID - идентификатор студента.
	StudentID student.ID

	// Points - накопленные баллы по курсу.
	Points int

	// Completed - процент пройденных кредитов, округлённый
	// до одного знака после запятой (round half-up).
	Completed float64
}

// Leaderboard строит таблицу студентов курса.
//
// Включаются только студенты с ненулевыми баллами по курсу; студенты
// с нулём опускаются, даже если зачислены. Сортировка - по баллам
// по убыванию, при равенстве - по ID по возрастанию.
func Leaderboard(c *course.Course, students []*student.Student) []Row {
	rows := make([]Row, 0, len(students))
	for _, s := range students {
		points := s.Grade(c.ID())
		if points == 0 {
			continue
		}
		rows = append(rows, Row{
			StudentID: s.ID,
			Points:    points,
			Completed: percentCompleted(points, c.RequiredCredits()),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].StudentID.Less(rows[j].StudentID)
	})
	return rows
}

// percentCompleted считает процент пройденных кредитов с округлением
// первого знака после запятой вверх при .x5 (round half-up).
func percentCompleted(points, requiredCredits int) float64 {
	pct := float64(points) / float64(requiredCredits) * 100
	return math.Floor(pct*10+0.5) / 10
}
