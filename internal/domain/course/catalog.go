package course

import "github.com/progress-hub/learning-tracker/internal/domain/shared"

// ══════════════════════════════════════════════════════════════════════════════
// CATALOG
// Каталог создаётся один раз на сессию и владеет всеми курсами.
// Курсы не добавляются и не удаляются в течение сессии.
// ══════════════════════════════════════════════════════════════════════════════

// Catalog представляет закрытый набор курсов сессии.
type Catalog struct {
	courses [Count]*Course
}

// NewCatalog создаёт каталог по списку определений.
// Каждый курс перечисления должен быть определён ровно один раз,
// иначе возвращается shared.ErrIncompleteCatalog.
func NewCatalog(defs []Definition) (*Catalog, error) {
	if len(defs) != Count {
		return nil, shared.ErrIncompleteCatalog
	}

	cat := &Catalog{}
	for _, def := range defs {
		c, err := New(def)
		if err != nil {
			return nil, err
		}
		if cat.courses[def.ID] != nil {
			return nil, shared.ErrIncompleteCatalog
		}
		cat.courses[def.ID] = c
	}
	return cat, nil
}

// DefaultCatalog создаёт каталог с порогами кредитов по умолчанию.
func DefaultCatalog() *Catalog {
	cat, err := NewCatalog(DefaultDefinitions())
	if err != nil {
		// Определения по умолчанию всегда валидны.
		panic(err)
	}
	return cat
}

// Course возвращает курс по идентификатору.
// Неизвестный ID - ошибка программирования, а не рантайма: перечисление закрыто.
func (cat *Catalog) Course(id ID) *Course {
	return cat.courses[id]
}

// All возвращает курсы в порядке каталога.
func (cat *Catalog) All() []*Course {
	out := make([]*Course, 0, Count)
	for _, id := range IDs() {
		out = append(out, cat.courses[id])
	}
	return out
}

// AddActivity добавляет балл сабмита в историю курса.
func (cat *Catalog) AddActivity(id ID, score int) {
	cat.courses[id].AddActivity(score)
}

// Enroll идемпотентно зачисляет студента на курс.
// Возвращает true, если студент был зачислен этим вызовом.
func (cat *Catalog) Enroll(id ID, studentID string) bool {
	return cat.courses[id].Enroll(studentID)
}

// AverageGrade возвращает средний балл курса.
func (cat *Catalog) AverageGrade(id ID) float64 {
	return cat.courses[id].AverageGrade()
}
