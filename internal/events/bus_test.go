package events_test

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/rpg-battle/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_Priority(t *testing.T) {
	bus := events.NewBus()

	var executionOrder []string
	record := func(name string) func(events.Event) error {
		return func(events.Event) error {
			executionOrder = append(executionOrder, name)
			return nil
		}
	}

	bus.Subscribe(&events.ListenerFunc{Name: "presenter", Order: events.PriorityPresentation, Callback: record("presenter")}, events.EventTypeDamageApplied)
	bus.Subscribe(&events.ListenerFunc{Name: "core", Order: events.PriorityCore, Callback: record("core")}, events.EventTypeDamageApplied)
	bus.Subscribe(&events.ListenerFunc{Name: "persistence", Order: events.PriorityPersistence, Callback: record("persistence")}, events.EventTypeDamageApplied)

	err := bus.Emit(&events.DamageAppliedEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeDamageApplied}})
	require.NoError(t, err)

	assert.Equal(t, []string{"core", "persistence", "presenter"}, executionOrder)
}

func TestBus_FailingListenerDoesNotStopOthers(t *testing.T) {
	bus := events.NewBus()
	called := false

	bus.Subscribe(&events.ListenerFunc{Name: "broken", Order: 0, Callback: func(events.Event) error {
		return errors.New("disk full")
	}}, events.EventTypeMessage)
	bus.Subscribe(&events.ListenerFunc{Name: "ok", Order: 1, Callback: func(events.Event) error {
		called = true
		return nil
	}}, events.EventTypeMessage)

	err := bus.Emit(&events.MessageEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeMessage}, Text: "hi"})

	assert.Error(t, err)
	assert.True(t, called)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus()
	count := 0
	listener := &events.ListenerFunc{Name: "counter", Callback: func(events.Event) error {
		count++
		return nil
	}}

	bus.Subscribe(listener, events.EventTypeMessage, events.EventTypeHighlight)
	_ = bus.Emit(&events.MessageEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeMessage}})
	_ = bus.Emit(&events.HighlightEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeHighlight}})
	assert.Equal(t, 2, count)

	bus.Unsubscribe("counter")
	_ = bus.Emit(&events.MessageEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeMessage}})
	assert.Equal(t, 2, count)
}
