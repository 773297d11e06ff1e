package algokit

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// registrySource is the CloudEvents source attribute for registry events.
const registrySource = "algokit.registry"

// Registry composes topic areas into a single library surface.
//
// Every topic is registered with the full set of symbol names it exports
// through the umbrella namespace. The registry enforces the composition
// invariant: exported names are unique across all topics. Registration is
// all-or-nothing: a topic that fails validation leaves the registry
// unchanged.
//
// Registry implements Subject; observers receive a CloudEvent for each
// accepted topic and for each detected collision.
type Registry struct {
	mu     sync.RWMutex
	logger Logger

	topics map[string]Topic
	order  []string          // registration order, for deterministic listing
	owners map[string]string // symbol name -> owning topic name

	observerMu sync.RWMutex
	observers  []observerEntry
}

type observerEntry struct {
	observer     Observer
	eventTypes   []string
	registeredAt time.Time
}

// NewRegistry creates an empty Registry. A nil logger is replaced with a
// no-op logger.
func NewRegistry(logger Logger) *Registry {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Registry{
		logger: logger,
		topics: make(map[string]Topic),
		owners: make(map[string]string),
	}
}

// Register adds a topic to the registry.
//
// The topic must carry a non-empty name and summary, and its symbol names
// must be non-empty, unique within the topic, and disjoint from every
// symbol already registered. A cross-topic collision returns an error
// wrapping ErrSymbolCollision that names the colliding symbol and both
// topics; it is never silently resolved.
func (r *Registry) Register(t Topic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.validate(t); err != nil {
		r.logger.Error("Topic rejected", "topic", t.Name, "error", err)
		r.notify(NewCloudEvent(EventTypeTopicRejected, registrySource, map[string]any{
			"topic": t.Name,
			"error": err.Error(),
		}, nil))
		return err
	}

	r.topics[t.Name] = t
	r.order = append(r.order, t.Name)
	for _, sym := range t.Symbols {
		r.owners[sym] = t.Name
	}

	r.logger.Debug("Registered topic", "topic", t.Name, "symbols", len(t.Symbols))
	r.notify(NewCloudEvent(EventTypeTopicRegistered, registrySource, map[string]any{
		"topic":   t.Name,
		"symbols": t.Symbols,
	}, nil))
	return nil
}

// validate checks a topic against the registry without mutating it.
// Callers must hold r.mu.
func (r *Registry) validate(t Topic) error {
	if t.Name == "" {
		return ErrTopicNameEmpty
	}
	if t.Summary == "" {
		return fmt.Errorf("%w: topic %q", ErrTopicSummaryEmpty, t.Name)
	}
	if _, exists := r.topics[t.Name]; exists {
		return fmt.Errorf("%w: %s", ErrTopicAlreadyRegistered, t.Name)
	}

	seen := make(map[string]struct{}, len(t.Symbols))
	for _, sym := range t.Symbols {
		if sym == "" {
			return fmt.Errorf("%w: topic %q", ErrSymbolNameEmpty, t.Name)
		}
		if _, dup := seen[sym]; dup {
			return fmt.Errorf("%w: %q in topic %q", ErrDuplicateSymbol, sym, t.Name)
		}
		seen[sym] = struct{}{}

		if owner, taken := r.owners[sym]; taken {
			r.notify(NewCloudEvent(EventTypeSymbolCollision, registrySource, map[string]any{
				"symbol":     sym,
				"owner":      owner,
				"registrant": t.Name,
			}, nil))
			return fmt.Errorf("%w: %q exported by both %q and %q", ErrSymbolCollision, sym, owner, t.Name)
		}
	}
	return nil
}

// Topics returns all registered topics in registration order.
func (r *Registry) Topics() []Topic {
	r.mu.RLock()
	defer r.mu.RUnlock()

	topics := make([]Topic, 0, len(r.order))
	for _, name := range r.order {
		topics = append(topics, r.topics[name])
	}
	return topics
}

// Topic returns the topic registered under the given name.
func (r *Registry) Topic(name string) (Topic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.topics[name]
	if !exists {
		return Topic{}, fmt.Errorf("%w: %s", ErrTopicNotFound, name)
	}
	return t, nil
}

// Lookup returns the topic that exports the given symbol name.
func (r *Registry) Lookup(symbol string) (Topic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, exists := r.owners[symbol]
	if !exists {
		return Topic{}, fmt.Errorf("%w: %s", ErrSymbolNotExported, symbol)
	}
	return r.topics[owner], nil
}

// Symbols returns every symbol name exported through the umbrella,
// sorted for deterministic output.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	symbols := make([]string, 0, len(r.owners))
	for sym := range r.owners {
		symbols = append(symbols, sym)
	}
	slices.Sort(symbols)
	return symbols
}

// RegisterObserver adds an observer for registry events. If eventTypes is
// empty the observer receives all events.
func (r *Registry) RegisterObserver(observer Observer, eventTypes ...string) error {
	if observer == nil {
		return ErrObserverNil
	}
	if observer.ObserverID() == "" {
		return ErrObserverIDEmpty
	}

	r.observerMu.Lock()
	defer r.observerMu.Unlock()

	r.observers = append(r.observers, observerEntry{
		observer:     observer,
		eventTypes:   slices.Clone(eventTypes),
		registeredAt: time.Now(),
	})
	return nil
}

// UnregisterObserver removes an observer. Idempotent.
func (r *Registry) UnregisterObserver(observer Observer) error {
	if observer == nil {
		return ErrObserverNil
	}

	r.observerMu.Lock()
	defer r.observerMu.Unlock()

	r.observers = slices.DeleteFunc(r.observers, func(e observerEntry) bool {
		return e.observer.ObserverID() == observer.ObserverID()
	})
	return nil
}

// NotifyObservers delivers an event to all interested observers. Observer
// errors are logged and do not interrupt delivery.
func (r *Registry) NotifyObservers(ctx context.Context, event cloudevents.Event) error {
	r.observerMu.RLock()
	entries := slices.Clone(r.observers)
	r.observerMu.RUnlock()

	for _, entry := range entries {
		if !entry.interested(event.Type()) {
			continue
		}
		if err := entry.observer.OnEvent(ctx, event); err != nil {
			r.logger.Warn("Observer failed to handle event",
				"observer", entry.observer.ObserverID(),
				"eventType", event.Type(),
				"error", err)
		}
	}
	return nil
}

// GetObservers returns information about currently registered observers.
func (r *Registry) GetObservers() []ObserverInfo {
	r.observerMu.RLock()
	defer r.observerMu.RUnlock()

	infos := make([]ObserverInfo, 0, len(r.observers))
	for _, entry := range r.observers {
		infos = append(infos, ObserverInfo{
			ID:           entry.observer.ObserverID(),
			EventTypes:   slices.Clone(entry.eventTypes),
			RegisteredAt: entry.registeredAt,
		})
	}
	return infos
}

// notify emits an event without a caller-supplied context.
func (r *Registry) notify(event cloudevents.Event) {
	_ = r.NotifyObservers(context.Background(), event)
}

func (e observerEntry) interested(eventType string) bool {
	if len(e.eventTypes) == 0 {
		return true
	}
	return slices.Contains(e.eventTypes, eventType)
}
