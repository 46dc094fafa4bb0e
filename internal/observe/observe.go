// Package observe provides a synchronous listener list for state holders.
package observe

// List holds change listeners. The zero value is ready to use.
//
// Listeners run synchronously on Notify. A listener that mutates the emitter
// (causing a nested Notify) does not recurse: the nested notification is
// queued and delivered after the current pass finishes.
type List struct {
	next      int
	listeners []entry
	emitting  bool
	pending   int
	disposed  bool
}

type entry struct {
	id int
	fn func()
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (l *List) Subscribe(fn func()) func() {
	if l.disposed || fn == nil {
		return func() {}
	}
	l.next++
	id := l.next
	l.listeners = append(l.listeners, entry{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *List) remove(id int) {
	for i, e := range l.listeners {
		if e.id == id {
			l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (l *List) Len() int {
	return len(l.listeners)
}

// Notify calls every listener once.
func (l *List) Notify() {
	if l.disposed {
		return
	}
	if l.emitting {
		l.pending++
		return
	}
	l.emitting = true
	defer func() { l.emitting = false }()

	for {
		// Snapshot so listeners may unsubscribe while being called.
		snapshot := append([]entry(nil), l.listeners...)
		for _, e := range snapshot {
			e.fn()
		}
		if l.pending == 0 || l.disposed {
			return
		}
		l.pending--
	}
}

// Dispose drops all listeners; later Subscribe and Notify calls are no-ops.
func (l *List) Dispose() {
	l.listeners = nil
	l.pending = 0
	l.disposed = true
}
