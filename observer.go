// Package algokit provides Observer pattern interfaces for watching library
// composition. Events use the CloudEvents specification for standardized
// format and better interoperability with external tooling.
package algokit

import (
	"context"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// Observer defines the interface for objects that want to be notified of
// registry events. Observers register with a Subject (typically the
// Registry) and are called whenever a matching event occurs.
type Observer interface {
	// OnEvent is called when an event occurs that the observer is
	// interested in. Observers should handle events quickly to avoid
	// blocking other observers.
	OnEvent(ctx context.Context, event cloudevents.Event) error

	// ObserverID returns a unique identifier for this observer,
	// used for registration tracking and debugging.
	ObserverID() string
}

// Subject defines the interface for objects that can be observed.
// The Registry implements Subject and notifies observers as topics are
// registered and collisions are detected.
type Subject interface {
	// RegisterObserver adds an observer to receive notifications.
	// Observers can optionally filter events by type using the
	// eventTypes parameter. If eventTypes is empty, the observer
	// receives all events.
	RegisterObserver(observer Observer, eventTypes ...string) error

	// UnregisterObserver removes an observer from receiving
	// notifications. Idempotent: unregistering an observer that was
	// never registered is not an error.
	UnregisterObserver(observer Observer) error

	// NotifyObservers sends an event to all registered observers.
	// Observer errors are logged and do not interrupt delivery to
	// the remaining observers.
	NotifyObservers(ctx context.Context, event cloudevents.Event) error

	// GetObservers returns information about currently registered
	// observers, useful for debugging and monitoring.
	GetObservers() []ObserverInfo
}

// ObserverInfo provides information about a registered observer.
type ObserverInfo struct {
	// ID is the unique identifier of the observer
	ID string `json:"id"`

	// EventTypes are the event types this observer is subscribed to.
	// Empty slice means all events.
	EventTypes []string `json:"eventTypes"`

	// RegisteredAt indicates when the observer was registered
	RegisteredAt time.Time `json:"registeredAt"`
}

// EventType constants for registry events.
// Following the CloudEvents specification, these use reverse domain notation.
const (
	// EventTypeTopicRegistered is emitted after a topic and its symbols
	// are accepted into the registry.
	EventTypeTopicRegistered = "com.algokit.topic.registered"

	// EventTypeTopicRejected is emitted when a topic fails validation,
	// including the symbol-collision case.
	EventTypeTopicRejected = "com.algokit.topic.rejected"

	// EventTypeSymbolCollision is emitted when a topic declares a symbol
	// already owned by another topic. The event data names both topics
	// and the colliding symbol.
	EventTypeSymbolCollision = "com.algokit.symbol.collision"
)

// FunctionalObserver provides a simple way to create observers from a
// function without defining a full struct.
type FunctionalObserver struct {
	id      string
	handler func(ctx context.Context, event cloudevents.Event) error
}

// NewFunctionalObserver creates an observer that uses the provided function
// to handle events.
func NewFunctionalObserver(id string, handler func(ctx context.Context, event cloudevents.Event) error) *FunctionalObserver {
	return &FunctionalObserver{id: id, handler: handler}
}

// OnEvent calls the handler function with the event.
func (f *FunctionalObserver) OnEvent(ctx context.Context, event cloudevents.Event) error {
	if f.handler == nil {
		return ErrEventHandlerNil
	}
	return f.handler(ctx, event)
}

// ObserverID returns the observer's unique identifier.
func (f *FunctionalObserver) ObserverID() string {
	return f.id
}
