package broadcast

import (
	"context"
	"sync"
)

// Notifier publishes a monotonically increasing version number to every
// active subscription. Listeners treat a new version as "data changed,
// re-fetch" and never receive a payload.
// All methods are safe for concurrent use.
type Notifier struct {
	subscriptions map[*Subscription]struct{}
	version       uint64
	closed        bool
	mu            sync.RWMutex
	cleanupWg     sync.WaitGroup // tracks context watchers
}

// NewNotifier creates a notifier at version 0.
func NewNotifier() *Notifier {
	return &Notifier{
		subscriptions: make(map[*Subscription]struct{}),
	}
}

// Version returns the latest published version.
func (n *Notifier) Version() uint64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.version
}

// Notify increments the version and delivers it to every subscription.
// It never blocks on slow listeners: a listener that has not consumed the
// previous version gets it replaced by the new one.
// After Close, Notify has no effect and returns the last version.
func (n *Notifier) Notify(_ context.Context) uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return n.version
	}

	n.version++
	for sub := range n.subscriptions {
		sub.deliver(n.version)
	}
	return n.version
}

// Subscribe registers a listener. The subscription is removed when Close is
// called on it or when ctx is cancelled, whichever happens first.
// If the notifier is already closed, the returned subscription is closed.
func (n *Notifier) Subscribe(ctx context.Context) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	sub := newSubscription(n)
	if n.closed {
		sub.close()
		return sub
	}
	n.subscriptions[sub] = struct{}{}

	if ctx.Done() != nil {
		n.cleanupWg.Add(1)
		go func() {
			defer n.cleanupWg.Done()
			select {
			case <-ctx.Done():
				n.unsubscribe(sub)
			case <-sub.done:
			}
		}()
	}

	return sub
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subscriptions)
}

// Close closes every subscription. It is safe to call more than once.
func (n *Notifier) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	for sub := range n.subscriptions {
		sub.close()
	}
	clear(n.subscriptions)
	n.mu.Unlock()

	n.cleanupWg.Wait()
	return nil
}

func (n *Notifier) unsubscribe(sub *Subscription) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.subscriptions, sub)
	sub.close()
}

// Subscription is one registered listener of a Notifier.
type Subscription struct {
	notifier *Notifier
	ch       chan uint64
	done     chan struct{}
	closed   bool
	mu       sync.Mutex
}

func newSubscription(n *Notifier) *Subscription {
	return &Subscription{
		notifier: n,
		ch:       make(chan uint64, 1),
		done:     make(chan struct{}),
	}
}

// Updates returns the channel receiving new versions. It holds at most one
// pending version, always the newest, and is closed when the subscription ends.
func (s *Subscription) Updates() <-chan uint64 {
	return s.ch
}

// Done is closed when the subscription ends.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Close unregisters the subscription. It is idempotent.
func (s *Subscription) Close() error {
	s.notifier.unsubscribe(s)
	return nil
}

func (s *Subscription) deliver(v uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	select {
	case s.ch <- v:
		return
	default:
	}
	// Drop the stale pending version. Only deliver sends, so the slot is free
	// after draining.
	select {
	case <-s.ch:
	default:
	}
	s.ch <- v
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
	close(s.done)
}
