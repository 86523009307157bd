// Package events provides typed publish/subscribe channels between the input
// pipeline and entity policies.
//
// Dispatch is synchronous: Publish returns only after every live subscriber
// has run, in subscription order. A Broker is not safe for concurrent use;
// it belongs to the simulation goroutine.
package events

// Broker fans a message of type T out to its subscribers.
type Broker[T any] struct {
	subs   []*Subscription
	nextID uint64
	handle map[uint64]func(T)
}

// Subscription is returned by Subscribe. Close drops the handler.
type Subscription struct {
	id     uint64
	cancel func(uint64)
}

func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{
		subs:   make([]*Subscription, 0, 2),
		handle: make(map[uint64]func(T)),
	}
}

// Subscribe registers fn and returns its subscription.
func (b *Broker[T]) Subscribe(fn func(T)) *Subscription {
	b.nextID++
	s := &Subscription{id: b.nextID, cancel: b.remove}
	b.subs = append(b.subs, s)
	b.handle[s.id] = fn
	return s
}

// Publish delivers msg to every subscriber before returning.
func (b *Broker[T]) Publish(msg T) {
	// snapshot so handlers may close subscriptions mid-dispatch
	subs := make([]*Subscription, len(b.subs))
	copy(subs, b.subs)
	for _, s := range subs {
		if fn, ok := b.handle[s.id]; ok {
			fn(msg)
		}
	}
}

// Len returns the number of live subscriptions.
func (b *Broker[T]) Len() int { return len(b.subs) }

func (b *Broker[T]) remove(id uint64) {
	if _, ok := b.handle[id]; !ok {
		return
	}
	delete(b.handle, id)
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			break
		}
	}
}

// Close unsubscribes. Safe to call more than once and on nil.
func (s *Subscription) Close() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel(s.id)
	s.cancel = nil
}
