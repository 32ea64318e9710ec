package notification

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// PIPELINE
// Пайплайн проводит уведомление через состояния none -> pending -> delivered.
// Дедупликация - множество составных ключей поверх обеих коллекций:
// членство проверяется за O(1) при создании, порядок доставки хранит
// отдельная FIFO-очередь.
// ══════════════════════════════════════════════════════════════════════════════

// IDGenerator выдаёт идентификатор для нового уведомления.
type IDGenerator func() string

// Pipeline управляет жизненным циклом уведомлений сессии.
type Pipeline struct {
	seen      map[Key]struct{} // ключи pending ∪ delivered
	pending   []*Notification  // FIFO, в порядке постановки
	delivered []*Notification  // история доставленных, только растёт
	newID     IDGenerator
}

// PipelineConfig содержит конфигурацию пайплайна.
type PipelineConfig struct {
	// NewID - генератор идентификаторов уведомлений.
	// По умолчанию - последовательный счётчик.
	NewID IDGenerator
}

// NewPipeline создаёт пустой пайплайн.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	newID := cfg.NewID
	if newID == nil {
		var seq int
		newID = func() string {
			seq++
			return "notification-" + strconv.Itoa(seq)
		}
	}
	return &Pipeline{
		seen:      make(map[Key]struct{}),
		pending:   make([]*Notification, 0),
		delivered: make([]*Notification, 0),
		newID:     newID,
	}
}

// Offer предлагает уведомление для пары (студент, курс).
//
// Если уведомление с таким ключом уже есть в очереди или в истории
// доставленных, ничего не происходит и возвращается (nil, false).
// Иначе создаётся pending-уведомление в хвосте очереди.
func (p *Pipeline) Offer(st *student.Student, c *course.Course) (*Notification, bool) {
	key := Key{StudentID: st.ID, CourseID: c.ID()}
	if _, exists := p.seen[key]; exists {
		return nil, false
	}

	n := newNotification(p.newID(), st, c)
	p.seen[key] = struct{}{}
	p.pending = append(p.pending, n)
	return n, true
}

// Seen возвращает true, если уведомление с таким ключом уже было
// создано за время сессии (pending или delivered).
func (p *Pipeline) Seen(key Key) bool {
	_, exists := p.seen[key]
	return exists
}

// PendingCount возвращает длину очереди ожидающих уведомлений.
func (p *Pipeline) PendingCount() int {
	return len(p.pending)
}

// DeliveredCount возвращает размер истории доставленных уведомлений.
func (p *Pipeline) DeliveredCount() int {
	return len(p.delivered)
}

// DeliveryReport содержит результат опустошения очереди.
type DeliveryReport struct {
	// Delivered - доставленные уведомления в порядке очереди.
	Delivered []*Notification

	// DistinctStudents - число различных студентов в батче.
	// Студент, завершивший два курса в одном батче, считается один раз.
	DistinctStudents int
}

// DeliverAll опустошает очередь строго в порядке постановки (FIFO),
// доставляя каждое уведомление через канал и перенося его в историю.
// Пустая очередь - не ошибка: возвращается отчёт с нулём студентов.
//
// Уведомление переходит в delivered независимо от исхода доставки:
// попытка ровно одна, повторов не бывает. Ошибки каналов собираются
// через errors.Join.
func (p *Pipeline) DeliverAll(ctx context.Context, ch Channel) (DeliveryReport, error) {
	report := DeliveryReport{Delivered: make([]*Notification, 0, len(p.pending))}
	if len(p.pending) == 0 {
		return report, nil
	}

	var errs []error
	notified := make(map[student.ID]struct{})
	now := time.Now().UTC()

	for _, n := range p.pending {
		if ch != nil {
			if err := ch.Deliver(ctx, n); err != nil {
				errs = append(errs, err)
			}
		}
		if err := n.markDelivered(now); err != nil {
			errs = append(errs, err)
			continue
		}
		p.delivered = append(p.delivered, n)
		report.Delivered = append(report.Delivered, n)
		notified[n.Student.ID] = struct{}{}
	}

	p.pending = p.pending[:0]
	report.DistinctStudents = len(notified)
	return report, errors.Join(errs...)
}
