package messaging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progress-hub/learning-tracker/internal/domain/shared"
)

func newTestBus() *InMemoryEventBus {
	return NewInMemoryEventBus(InMemoryEventBusConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestEventBus_PublishRoutesByType(t *testing.T) {
	bus := newTestBus()

	var registered, completed int
	require.NoError(t, bus.Subscribe(shared.EventStudentRegistered, func(ctx context.Context, e shared.Event) error {
		registered++
		return nil
	}))
	require.NoError(t, bus.Subscribe(shared.EventCourseCompleted, func(ctx context.Context, e shared.Event) error {
		completed++
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewStudentRegisteredEvent("10000", "john@doe.com")))
	require.NoError(t, bus.Publish(shared.NewStudentRegisteredEvent("10001", "jane@doe.com")))

	assert.Equal(t, 2, registered)
	assert.Zero(t, completed)
}

func TestEventBus_SubscribeAllSeesEverything(t *testing.T) {
	bus := newTestBus()

	var seen []shared.EventType
	require.NoError(t, bus.SubscribeAll(func(ctx context.Context, e shared.Event) error {
		seen = append(seen, e.EventType())
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewStudentRegisteredEvent("10000", "john@doe.com")))
	require.NoError(t, bus.Publish(shared.NewCourseCompletedEvent("10000", "Java")))

	assert.Equal(t, []shared.EventType{shared.EventStudentRegistered, shared.EventCourseCompleted}, seen)
}

func TestEventBus_HandlerFailureDoesNotStopDelivery(t *testing.T) {
	bus := newTestBus()
	boom := errors.New("boom")

	var delivered bool
	require.NoError(t, bus.Subscribe(shared.EventStudentRegistered, func(ctx context.Context, e shared.Event) error {
		return boom
	}))
	require.NoError(t, bus.Subscribe(shared.EventStudentRegistered, func(ctx context.Context, e shared.Event) error {
		delivered = true
		return nil
	}))

	err := bus.Publish(shared.NewStudentRegisteredEvent("10000", "john@doe.com"))
	assert.ErrorIs(t, err, boom)
	assert.True(t, delivered)
}

func TestEventBus_NilArguments(t *testing.T) {
	bus := newTestBus()

	assert.Error(t, bus.Subscribe(shared.EventStudentRegistered, nil))
	assert.Error(t, bus.SubscribeAll(nil))
	assert.Error(t, bus.Publish(nil))
}

func TestEventBus_Close(t *testing.T) {
	bus := newTestBus()
	require.NoError(t, bus.Close())

	err := bus.Publish(shared.NewStudentRegisteredEvent("10000", "john@doe.com"))
	assert.ErrorIs(t, err, ErrEventBusClosed)

	err = bus.Subscribe(shared.EventStudentRegistered, func(ctx context.Context, e shared.Event) error { return nil })
	assert.ErrorIs(t, err, ErrEventBusClosed)

	err = bus.SubscribeAll(func(ctx context.Context, e shared.Event) error { return nil })
	assert.ErrorIs(t, err, ErrEventBusClosed)
}
