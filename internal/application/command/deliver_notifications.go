package command

import (
	"context"

	"github.com/progress-hub/learning-tracker/internal/domain/notification"
	"github.com/progress-hub/learning-tracker/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// DELIVER NOTIFICATIONS COMMAND
// Drains the pending notification queue in FIFO order through the
// configured delivery channel.
// ══════════════════════════════════════════════════════════════════════════════

// DeliverNotificationsCommand triggers bulk delivery. It carries no
// payload: the queue itself determines what is delivered.
type DeliverNotificationsCommand struct {
	// CorrelationID for tracing.
	CorrelationID string
}

// DeliverNotificationsResult contains the outcome of a delivery batch.
type DeliverNotificationsResult struct {
	// Delivered lists the delivered notifications in queue order.
	Delivered []*notification.Notification

	// StudentsNotified is the number of distinct students touched by
	// the batch. Draining an empty queue reports zero.
	StudentsNotified int
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// DeliverNotificationsHandler handles the DeliverNotificationsCommand.
type DeliverNotificationsHandler struct {
	pipeline       *notification.Pipeline
	channel        notification.Channel
	eventPublisher shared.EventPublisher
}

// NewDeliverNotificationsHandler creates a new DeliverNotificationsHandler.
func NewDeliverNotificationsHandler(
	pipeline *notification.Pipeline,
	channel notification.Channel,
	eventPublisher shared.EventPublisher,
) *DeliverNotificationsHandler {
	return &DeliverNotificationsHandler{
		pipeline:       pipeline,
		channel:        channel,
		eventPublisher: eventPublisher,
	}
}

// Handle drains the queue. An empty queue is not an error.
func (h *DeliverNotificationsHandler) Handle(ctx context.Context, cmd DeliverNotificationsCommand) (*DeliverNotificationsResult, error) {
	report, err := h.pipeline.DeliverAll(ctx, h.channel)
	if err != nil {
		return nil, err
	}

	if h.eventPublisher != nil {
		for _, n := range report.Delivered {
			event := shared.NewNotificationDeliveredEvent(n.ID, n.Student.ID.String(), n.Course.Name())
			if cmd.CorrelationID != "" {
				event.BaseEvent = event.BaseEvent.WithCorrelationID(cmd.CorrelationID)
			}
			_ = h.eventPublisher.Publish(event)
		}
	}

	return &DeliverNotificationsResult{
		Delivered:        report.Delivered,
		StudentsNotified: report.DistinctStudents,
	}, nil
}
