package student

import (
	"context"
	"iter"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// Интерфейс определяет контракт для работы с хранилищем студентов.
// Реализация находится в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции реестра студентов.
type Repository interface {
	// Create регистрирует нового студента и назначает ему следующий
	// последовательный ID (начиная с 10000). Неуспешная попытка не
	// расходует идентификатор.
	// Возвращает shared.ErrEmailTaken, если email уже занят.
	Create(ctx context.Context, s *Student) error

	// GetByID возвращает студента по ID. Идентификатор сопоставляется
	// только как числовая строка: для нечисловой строки и для
	// неизвестного ID возвращается shared.ErrStudentNotFound.
	GetByID(ctx context.Context, id ID) (*Student, error)

	// All возвращает ленивую перезапускаемую последовательность
	// студентов в порядке регистрации.
	All(ctx context.Context) iter.Seq[*Student]

	// Count возвращает число зарегистрированных студентов.
	Count(ctx context.Context) (int, error)
}
