package notification

import "context"

// ══════════════════════════════════════════════════════════════════════════════
// DELIVERY CHANNEL
// Канал доставки - порт для вывода уведомлений. Пайплайн не знает,
// как именно форматируется и куда пишется сообщение.
// ══════════════════════════════════════════════════════════════════════════════

// ChannelType определяет тип канала доставки уведомлений.
type ChannelType string

const (
	// ChannelTypeConsole - доставка в консоль сессии.
	ChannelTypeConsole ChannelType = "console"

	// ChannelTypeEmail - доставка по email (на будущее).
	ChannelTypeEmail ChannelType = "email"
)

// IsValid проверяет корректность типа канала.
func (ct ChannelType) IsValid() bool {
	switch ct {
	case ChannelTypeConsole, ChannelTypeEmail:
		return true
	default:
		return false
	}
}

// String возвращает строковое представление типа канала.
func (ct ChannelType) String() string {
	return string(ct)
}

// Channel доставляет одно уведомление получателю.
type Channel interface {
	// Deliver доставляет уведомление. Вызывается ровно один раз
	// для каждого уведомления, строго в порядке очереди.
	Deliver(ctx context.Context, n *Notification) error

	// Type возвращает тип канала.
	Type() ChannelType
}
