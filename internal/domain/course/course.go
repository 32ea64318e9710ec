// Package course содержит доменную модель курсов Learning Progress Tracker.
// Набор курсов закрыт: четыре курса известны на этапе компиляции,
// состояния "неизвестный курс" в рантайме не существует.
package course

import (
	"strings"

	"github.com/progress-hub/learning-tracker/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// ID представляет идентификатор курса из закрытого перечисления.
// Порядок значений задаёт канонический порядок каталога.
type ID int

const (
	// Java - курс Java.
	Java ID = iota

	// DSA - курс Data Structures and Algorithms.
	DSA

	// Databases - курс Databases.
	Databases

	// Spring - курс Spring.
	Spring

	// Count - число курсов в закрытом каталоге.
	Count = 4
)

// IsValid проверяет, что ID входит в закрытое перечисление.
func (id ID) IsValid() bool {
	return id >= 0 && int(id) < Count
}

// String возвращает каноническое имя курса.
func (id ID) String() string {
	switch id {
	case Java:
		return "Java"
	case DSA:
		return "DSA"
	case Databases:
		return "Databases"
	case Spring:
		return "Spring"
	default:
		return "unknown"
	}
}

// IDs возвращает все идентификаторы курсов в порядке каталога.
func IDs() []ID {
	return []ID{Java, DSA, Databases, Spring}
}

// ParseID разбирает имя курса без учёта регистра.
// Возвращает shared.ErrUnknownCourse для имени вне каталога.
func ParseID(name string) (ID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "java":
		return Java, nil
	case "dsa":
		return DSA, nil
	case "databases":
		return Databases, nil
	case "spring":
		return Spring, nil
	default:
		return 0, shared.ErrUnknownCourse
	}
}

// Definition описывает конфигурацию одного курса: идентификатор
// и порог кредитов, необходимый для завершения.
type Definition struct {
	ID              ID
	RequiredCredits int
}

// DefaultDefinitions возвращает пороги кредитов по умолчанию.
func DefaultDefinitions() []Definition {
	return []Definition{
		{ID: Java, RequiredCredits: 600},
		{ID: DSA, RequiredCredits: 400},
		{ID: Databases, RequiredCredits: 480},
		{ID: Spring, RequiredCredits: 550},
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// COURSE ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Course представляет курс: порог кредитов, историю сабмитов
// и список зачисленных студентов в порядке первого зачисления.
// Порог кредитов неизменяем после создания; история сабмитов только растёт.
type Course struct {
	id              ID
	requiredCredits int
	enrolled        []string        // ID студентов в порядке первого зачисления
	enrolledSet     map[string]bool // индекс для идемпотентного зачисления
	history         []int           // баллы принятых сабмитов, append-only
}

// New создаёт курс по определению.
// Возвращает shared.ErrInvalidCredits, если порог кредитов не положительный.
func New(def Definition) (*Course, error) {
	if !def.ID.IsValid() {
		return nil, shared.ErrUnknownCourse
	}
	if def.RequiredCredits <= 0 {
		return nil, shared.ErrInvalidCredits
	}
	return &Course{
		id:              def.ID,
		requiredCredits: def.RequiredCredits,
		enrolled:        make([]string, 0),
		enrolledSet:     make(map[string]bool),
		history:         make([]int, 0),
	}, nil
}

// ID возвращает идентификатор курса.
func (c *Course) ID() ID {
	return c.id
}

// Name возвращает имя курса.
func (c *Course) Name() string {
	return c.id.String()
}

// RequiredCredits возвращает порог кредитов для завершения курса.
func (c *Course) RequiredCredits() int {
	return c.requiredCredits
}

// AddActivity добавляет балл принятого сабмита в историю курса.
// Вызывающая сторона гарантирует score > 0, диапазон здесь не проверяется.
func (c *Course) AddActivity(score int) {
	c.history = append(c.history, score)
}

// Enroll зачисляет студента на курс, если он ещё не зачислен.
// Возвращает true, если студент был зачислен этим вызовом.
func (c *Course) Enroll(studentID string) bool {
	if c.enrolledSet[studentID] {
		return false
	}
	c.enrolledSet[studentID] = true
	c.enrolled = append(c.enrolled, studentID)
	return true
}

// EnrolledCount возвращает число зачисленных студентов.
func (c *Course) EnrolledCount() int {
	return len(c.enrolled)
}

// Enrolled возвращает копию списка зачисленных студентов
// в порядке первого зачисления.
func (c *Course) Enrolled() []string {
	out := make([]string, len(c.enrolled))
	copy(out, c.enrolled)
	return out
}

// SubmissionCount возвращает длину истории сабмитов.
func (c *Course) SubmissionCount() int {
	return len(c.history)
}

// HasActivity возвращает true, если по курсу был хотя бы один сабмит.
func (c *Course) HasActivity() bool {
	return len(c.history) > 0
}

// AverageGrade возвращает средний балл по истории сабмитов
// или 0 для пустой истории.
func (c *Course) AverageGrade() float64 {
	if len(c.history) == 0 {
		return 0
	}
	sum := 0
	for _, score := range c.history {
		sum += score
	}
	return float64(sum) / float64(len(c.history))
}
