// Package notification содержит доменную модель уведомлений о завершении курса.
// Для каждой пары (студент, курс) уведомление создаётся не более одного раза
// за всю сессию и доставляется ровно один раз.
package notification

import (
	"time"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/shared"
	"github.com/progress-hub/learning-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Key представляет составной ключ уведомления.
// Два уведомления равны тогда и только тогда, когда равны их ключи.
type Key struct {
	StudentID student.ID
	CourseID  course.ID
}

// Status определяет стадию жизненного цикла уведомления.
type Status string

const (
	// StatusPending - уведомление ждёт доставки в очереди.
	StatusPending Status = "pending"

	// StatusDelivered - уведомление доставлено. Терминальное состояние.
	StatusDelivered Status = "delivered"
)

// IsValid проверяет корректность статуса.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusDelivered
}

// String возвращает строковое представление статуса.
func (s Status) String() string {
	return string(s)
}

// ══════════════════════════════════════════════════════════════════════════════
// NOTIFICATION ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Notification представляет уведомление о завершении курса.
// Ссылки на студента и курс не владеющие: сущности принадлежат
// реестру и каталогу, здесь они нужны для сравнения и чтения.
type Notification struct {
	// ID - уникальный идентификатор уведомления.
	ID string

	// Student - студент, завершивший курс.
	Student *student.Student

	// Course - завершённый курс.
	Course *course.Course

	// Status - текущая стадия жизненного цикла.
	Status Status

	// CreatedAt - момент постановки в очередь.
	CreatedAt time.Time

	// DeliveredAt - момент доставки (нулевой, пока Status != delivered).
	DeliveredAt time.Time
}

// newNotification создаёт уведомление в состоянии pending.
func newNotification(id string, st *student.Student, c *course.Course) *Notification {
	return &Notification{
		ID:        id,
		Student:   st,
		Course:    c,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

// Key возвращает составной ключ уведомления.
func (n *Notification) Key() Key {
	return Key{StudentID: n.Student.ID, CourseID: n.Course.ID()}
}

// Equal сравнивает уведомления по значению: одинаковый студент
// и одинаковый курс.
func (n *Notification) Equal(other *Notification) bool {
	if other == nil {
		return false
	}
	return n.Key() == other.Key()
}

// markDelivered переводит уведомление в терминальное состояние.
func (n *Notification) markDelivered(at time.Time) error {
	if n.Status == StatusDelivered {
		return shared.ErrNotificationDelivered
	}
	n.Status = StatusDelivered
	n.DeliveredAt = at
	return nil
}
