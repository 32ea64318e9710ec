// Package student содержит доменную модель студента Learning Progress Tracker.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package student

import (
	"fmt"
	"regexp"
	"time"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// ID представляет уникальный идентификатор студента.
// Это строковая форма монотонно растущего числа, начиная с 10000.
type ID string

var idRegex = regexp.MustCompile(`^\d+$`)

// IsValid проверяет, что ID - числовая строка.
func (id ID) IsValid() bool {
	return idRegex.MatchString(string(id))
}

// String возвращает строковое представление ID.
func (id ID) String() string {
	return string(id)
}

// Less сравнивает идентификаторы как числа.
// Ведущих нулей не бывает, поэтому достаточно сравнить длину и строку.
func (id ID) Less(other ID) bool {
	if len(id) != len(other) {
		return len(id) < len(other)
	}
	return id < other
}

// Name представляет имя или фамилию студента.
//
// Грамматика: только латинские буквы, внутри допустимы апострофы,
// дефисы и пробелы, первый и последний символ - буква, минимум два
// символа, без двух знаков пунктуации подряд.
type Name string

var (
	nameShapeRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z' -]*[A-Za-z]$`)
	namePairRegex  = regexp.MustCompile(`['-]{2}`)
)

// IsValid проверяет имя по грамматике.
func (n Name) IsValid() bool {
	s := string(n)
	return len(s) >= 2 && nameShapeRegex.MatchString(s) && !namePairRegex.MatchString(s)
}

// String возвращает строковое представление имени.
func (n Name) String() string {
	return string(n)
}

// Email представляет адрес электронной почты студента.
// Email уникален среди всех студентов; уникальность проверяет Repository.
type Email string

var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// IsValid проверяет форму "local@domain.tld".
func (e Email) IsValid() bool {
	return emailRegex.MatchString(string(e))
}

// String возвращает строковое представление адреса.
func (e Email) String() string {
	return string(e)
}

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Student представляет зарегистрированного студента: личные данные
// и накопленное состояние по каждому курсу каталога.
//
// Баллы и счётчики сабмитов индексируются course.ID, поэтому запись
// по каждому курсу существует всегда и по умолчанию равна нулю.
type Student struct {
	// ID назначается репозиторием при успешной регистрации и далее неизменяем.
	ID ID

	// FirstName - имя студента.
	FirstName Name

	// LastName - фамилия студента (может состоять из нескольких слов).
	LastName Name

	// Email - адрес электронной почты, уникальный среди студентов.
	Email Email

	// RegisteredAt - момент регистрации.
	RegisteredAt time.Time

	grades      [course.Count]int // накопленные баллы по курсам
	submissions [course.Count]int // число принятых сабмитов по курсам
}

// New создаёт студента с нулевым прогрессом по всем курсам.
// Возвращает ошибку валидации для некорректных имени, фамилии или адреса.
func New(firstName, lastName Name, email Email) (*Student, error) {
	if !firstName.IsValid() {
		return nil, shared.ErrInvalidFirstName
	}
	if !lastName.IsValid() {
		return nil, shared.ErrInvalidLastName
	}
	if !email.IsValid() {
		return nil, shared.ErrInvalidEmail
	}
	return &Student{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		RegisteredAt: time.Now().UTC(),
	}, nil
}

// FullName возвращает полное имя студента.
func (s *Student) FullName() string {
	return fmt.Sprintf("%s %s", s.FirstName, s.LastName)
}

// Grade возвращает накопленные баллы по курсу.
func (s *Student) Grade(id course.ID) int {
	return s.grades[id]
}

// Submissions возвращает число принятых сабмитов по курсу.
func (s *Student) Submissions(id course.ID) int {
	return s.submissions[id]
}

// Grades возвращает накопленные баллы по всем курсам в порядке каталога.
func (s *Student) Grades() [course.Count]int {
	return s.grades
}

// Apply применяет балл одного сабмита к курсу.
//
// Нулевой или отрицательный балл - полный no-op: баллы, счётчик сабмитов
// и зачисление не меняются. Возвращает true, если это первый принятый
// сабмит студента по курсу (сигнал для зачисления в каталоге).
func (s *Student) Apply(id course.ID, score int) bool {
	if score <= 0 {
		return false
	}
	s.grades[id] += score
	s.submissions[id]++
	return s.submissions[id] == 1
}
