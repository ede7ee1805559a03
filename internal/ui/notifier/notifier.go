// Package notifier fans out live-reload signals to connected browsers.
package notifier

import "sync"

// Event tells listeners why they are being woken.
type Event struct {
	// Path is the changed asset, relative to the watched directory.
	// Empty for a manual trigger.
	Path string
}

// Notifier broadcasts events to all subscribed listeners.
// Delivery is best effort: a listener that has not drained its previous
// event misses the new one, which is fine because every event means "reload".
type Notifier struct {
	mu        sync.RWMutex
	listeners map[chan Event]struct{}
	closed    bool
}

// New creates a new Notifier instance.
func New() *Notifier {
	return &Notifier{
		listeners: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a listener. The returned cancel func must be called when
// the listener goes away; it is safe to call more than once.
// After Close, Subscribe returns an already closed channel.
func (n *Notifier) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 1)

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	n.listeners[ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if _, ok := n.listeners[ch]; ok {
				delete(n.listeners, ch)
				close(ch)
			}
		})
	}
}

// Broadcast sends ev to every listener without blocking and reports how many
// listeners received it.
func (n *Notifier) Broadcast(ev Event) int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	delivered := 0
	for ch := range n.listeners {
		select {
		case ch <- ev:
			delivered++
		default:
		}
	}
	return delivered
}

// Len returns the number of current listeners.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}

// Close closes every listener channel and rejects new subscriptions.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for ch := range n.listeners {
		delete(n.listeners, ch)
		close(ch)
	}
}
