// Package event provides a small in-process publish/subscribe bus.
package event

import "sync"

// Listener receives an event payload.
type Listener func(payload any)

// Bus fans events out to subscribed listeners by name.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
}

func NewBus() *Bus {
	return &Bus{listeners: map[string][]Listener{}}
}

// Subscribe registers a listener for the named event.
func (b *Bus) Subscribe(name string, l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[name] = append(b.listeners[name], l)
}

// Publish delivers the payload to every listener synchronously, in
// subscription order.
func (b *Bus) Publish(name string, payload any) {
	for _, l := range b.snapshot(name) {
		l(payload)
	}
}

// PublishAsync delivers the payload to every listener on its own goroutine
// and returns without waiting.
func (b *Bus) PublishAsync(name string, payload any) {
	for _, l := range b.snapshot(name) {
		go l(payload)
	}
}

// Reset drops all listeners.
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = map[string][]Listener{}
}

func (b *Bus) snapshot(name string) []Listener {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Listener, len(b.listeners[name]))
	copy(out, b.listeners[name])
	return out
}

// Default is the process-wide bus used by the application layer.
var Default = NewBus()

func Subscribe(name string, l Listener) { Default.Subscribe(name, l) }

func Publish(name string, payload any) { Default.Publish(name, payload) }

func PublishAsync(name string, payload any) { Default.PublishAsync(name, payload) }
