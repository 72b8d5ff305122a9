package eventv1

import "sync"

// Listener receives events synchronously, on the goroutine that produced them.
type Listener func(ev Event)

// Dispatcher fans events out to listeners in registration order: listeners for
// the event's kind first, then wildcard listeners. It never retries.
type Dispatcher struct {
	mu       sync.RWMutex
	byKind   map[Kind][]Listener
	wildcard []Listener
}

// NewDispatcher creates a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		byKind: make(map[Kind][]Listener),
	}
}

// On registers l for events of kind.
func (d *Dispatcher) On(kind Kind, l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byKind[kind] = append(d.byKind[kind], l)
}

// OnAny registers l for every event.
func (d *Dispatcher) OnAny(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.wildcard = append(d.wildcard, l)
}

// Dispatch delivers ev to every matching listener before returning.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	typed := d.byKind[ev.Kind()]
	listeners := make([]Listener, 0, len(typed)+len(d.wildcard))
	listeners = append(listeners, typed...)
	listeners = append(listeners, d.wildcard...)
	d.mu.RUnlock()

	for _, l := range listeners {
		l(ev)
	}
}
