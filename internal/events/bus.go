package events

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(listener EventListener, eventTypes ...EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, eventType := range eventTypes {
		b.listeners[eventType] = append(b.listeners[eventType], listener)

		sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
			return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
		})
	}
}

// Unsubscribe removes a listener from every event type
func (b *Bus) Unsubscribe(listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for eventType, listeners := range b.listeners {
		kept := listeners[:0]
		for _, l := range listeners {
			if l.ID() != listenerID {
				kept = append(kept, l)
			}
		}
		b.listeners[eventType] = kept
	}
}

// Emit sends an event to all registered listeners in priority order.
// A failing listener is logged and does not stop the others.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	var firstErr error
	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			log.Printf("EventBus: listener %s failed on %s: %v", listener.ID(), event.GetType(), err)
			if firstErr == nil {
				firstErr = fmt.Errorf("listener %s failed: %w", listener.ID(), err)
			}
		}
	}

	return firstErr
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
}

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	Name     string
	Order    int
	Callback func(Event) error
}

func (l *ListenerFunc) HandleEvent(event Event) error { return l.Callback(event) }
func (l *ListenerFunc) Priority() int                 { return l.Order }
func (l *ListenerFunc) ID() string                    { return l.Name }
