package window

import (
	"sort"

	"github.com/ctxos/desktop/backend/internal/shared/types"
)

// EventType names a window state change
type EventType string

const (
	EventOpened    EventType = "opened"
	EventFocused   EventType = "focused"
	EventMinimized EventType = "minimized"
	EventRestored  EventType = "restored"
	EventMoved     EventType = "moved"
	EventResized   EventType = "resized"
	EventClosed    EventType = "closed"
)

// Event describes one committed mutation. Window is a copy taken right after
// the mutation (right before removal for EventClosed).
type Event struct {
	Seq    uint64       `json:"seq"`
	Type   EventType    `json:"type"`
	Window types.Window `json:"window"`
}

// Listener receives events in commit order, outside the manager's lock.
// Listeners may call back into the manager, including mutations; events
// produced that way are delivered after the current one.
type Listener func(Event)

// Subscribe registers l and returns a function that removes it
func (m *Manager) Subscribe(l Listener) (cancel func()) {
	m.listenersMu.Lock()
	key := m.nextListener
	m.nextListener++
	m.listeners[key] = l
	m.listenersMu.Unlock()

	return func() {
		m.listenersMu.Lock()
		delete(m.listeners, key)
		m.listenersMu.Unlock()
	}
}

// emit queues an event (must hold mu)
func (m *Manager) emit(typ EventType, w *types.Window) {
	m.seq++
	m.pending = append(m.pending, Event{Seq: m.seq, Type: typ, Window: *w})
}

// flush delivers queued events. Only one goroutine drains at a time, which
// keeps delivery in commit order even when listeners mutate the manager.
// A panicking listener releases the drain before the panic propagates.
func (m *Manager) flush() {
	m.mu.Lock()
	if m.flushing {
		m.mu.Unlock()
		return
	}
	m.flushing = true
	defer func() {
		if r := recover(); r != nil {
			m.mu.Lock()
			m.flushing = false
			m.mu.Unlock()
			panic(r)
		}
	}()
	for len(m.pending) > 0 {
		batch := m.pending
		m.pending = nil
		m.mu.Unlock()

		listeners := m.listenerSnapshot()
		for _, ev := range batch {
			for _, l := range listeners {
				l(ev)
			}
		}

		m.mu.Lock()
	}
	m.flushing = false
	m.mu.Unlock()
}

// listenerSnapshot returns listeners in subscription order
func (m *Manager) listenerSnapshot() []Listener {
	m.listenersMu.RLock()
	defer m.listenersMu.RUnlock()

	keys := make([]uint64, 0, len(m.listeners))
	for k := range m.listeners {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	listeners := make([]Listener, len(keys))
	for i, k := range keys {
		listeners[i] = m.listeners[k]
	}
	return listeners
}
