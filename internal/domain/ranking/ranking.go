// Package ranking содержит движок сравнительной статистики курсов.
// Все функции чистые и детерминированные: они считают результат
// по текущему снимку каталога и реестра, ничего не кешируя и не мутируя.
package ranking

import (
	"strings"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
)

// ══════════════════════════════════════════════════════════════════════════════
// RESULT
// ══════════════════════════════════════════════════════════════════════════════

// Result представляет одну строку сравнительной статистики:
// группу курсов, разделивших экстремальное значение метрики.
type Result struct {
	// Applicable - false, когда статистика неприменима
	// (нет активности или группа дублирует противоположную).
	Applicable bool

	// Courses - группа курсов с экстремальным значением метрики,
	// в порядке каталога.
	Courses []course.ID
}

// NotApplicable возвращает неприменимый результат.
func NotApplicable() Result {
	return Result{Applicable: false}
}

// Render возвращает имена курсов группы через запятую
// или "n/a" для неприменимого результата.
func (r Result) Render() string {
	if !r.Applicable || len(r.Courses) == 0 {
		return "n/a"
	}
	names := make([]string, 0, len(r.Courses))
	for _, id := range r.Courses {
		names = append(names, id.String())
	}
	return strings.Join(names, ", ")
}

// Overview содержит все шесть строк сравнительной статистики.
type Overview struct {
	MostPopular     Result
	LeastPopular    Result
	HighestActivity Result
	LowestActivity  Result
	Easiest         Result
	Hardest         Result
}

// ══════════════════════════════════════════════════════════════════════════════
// COMPARATIVE STATISTICS
// ══════════════════════════════════════════════════════════════════════════════

// BuildOverview считает сравнительную статистику по снимку каталога.
//
// Популярность - число зачисленных студентов, активность - длина истории
// сабмитов, сложность - средний балл (самый лёгкий курс имеет наибольший
// средний балл). Группы связанных курсов перечисляются в порядке каталога.
func BuildOverview(cat *course.Catalog) Overview {
	courses := cat.All()

	mostPopular, leastPopular := extremes(courses, func(c *course.Course) float64 {
		return float64(c.EnrolledCount())
	})
	highestActivity, lowestActivity := extremes(courses, func(c *course.Course) float64 {
		return float64(c.SubmissionCount())
	})
	easiest, hardest := extremes(courses, func(c *course.Course) float64 {
		return c.AverageGrade()
	})

	return Overview{
		MostPopular:     mostPopular,
		LeastPopular:    leastPopular,
		HighestActivity: highestActivity,
		LowestActivity:  lowestActivity,
		Easiest:         easiest,
		Hardest:         hardest,
	}
}

// extremes находит группы курсов с максимальным и минимальным значением
// метрики и применяет политику "n/a".
//
// Признак отсутствия активности - пустая история сабмитов у курсов группы,
// а не нулевое значение метрики. Если группа минимума после рендеринга
// текстуально совпадает с группой максимума, минимум тоже неприменим:
// одна группа покрывает весь каталог, и вторая строка дублировала бы первую.
func extremes(courses []*course.Course, metric func(*course.Course) float64) (most, least Result) {
	maxValue := metric(courses[0])
	minValue := maxValue
	for _, c := range courses[1:] {
		v := metric(c)
		if v > maxValue {
			maxValue = v
		}
		if v < minValue {
			minValue = v
		}
	}

	maxGroup := group(courses, metric, maxValue)
	minGroup := group(courses, metric, minValue)

	most = Result{Applicable: hasActivity(courses, maxGroup), Courses: maxGroup}
	least = Result{Applicable: hasActivity(courses, minGroup), Courses: minGroup}

	if least.Applicable && least.Render() == most.Render() {
		least = NotApplicable()
	}
	return most, least
}

// group собирает курсы с заданным значением метрики в порядке каталога.
func group(courses []*course.Course, metric func(*course.Course) float64, value float64) []course.ID {
	ids := make([]course.ID, 0, len(courses))
	for _, c := range courses {
		if metric(c) == value {
			ids = append(ids, c.ID())
		}
	}
	return ids
}

// hasActivity возвращает true, если хотя бы у одного курса группы
// непустая история сабмитов.
func hasActivity(courses []*course.Course, ids []course.ID) bool {
	inGroup := make(map[course.ID]bool, len(ids))
	for _, id := range ids {
		inGroup[id] = true
	}
	for _, c := range courses {
		if inGroup[c.ID()] && c.HasActivity() {
			return true
		}
	}
	return false
}
