package grid

import (
	"sync"

	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

// emitter dispatches named change events to registered listeners. Listeners
// are keyed by a monotonically increasing id so the returned handle, not
// function identity, drives removal.
type emitter struct {
	mu     sync.Mutex
	nextID uint64
	// listeners maps event name to listener id to callback.
	listeners map[string]map[uint64]func()
}

func newEmitter() *emitter {
	return &emitter{listeners: make(map[string]map[uint64]func())}
}

func (e *emitter) on(event string, fn func()) types.Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := e.nextID
	if e.listeners[event] == nil {
		e.listeners[event] = make(map[uint64]func())
	}
	e.listeners[event][id] = fn

	return &subscription{emitter: e, event: event, id: id}
}

func (e *emitter) emit(event string) {
	e.mu.Lock()
	fns := make([]func(), 0, len(e.listeners[event]))
	for _, fn := range e.listeners[event] {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (e *emitter) remove(event string, id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.listeners[event], id)
}

// subscription is the handle returned by on.
type subscription struct {
	emitter *emitter
	event   string
	id      uint64
	once    sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.emitter.remove(s.event, s.id)
	})
}
