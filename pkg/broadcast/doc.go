// Package broadcast provides a version-counter notifier for "something
// changed, refresh" events, such as a payment being recorded.
//
// Publishers call Notify; every active subscription eventually observes the
// newest version. Slow listeners never block the publisher: each subscription
// buffers a single pending version and a newer one replaces it.
//
//	n := broadcast.NewNotifier()
//	defer n.Close()
//
//	sub := n.Subscribe(ctx) // removed when ctx is cancelled
//	defer sub.Close()
//
//	go func() {
//		for v := range sub.Updates() {
//			reload(v)
//		}
//	}()
//
//	n.Notify(ctx)
//
// Subscriptions are explicit values, so a listener is registered and
// unregistered by the code that owns it rather than through shared state.
package broadcast
