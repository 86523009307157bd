package events

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBrokerPublishOrder(t *testing.T) {
	b := NewBroker[int]()
	var got []string

	b.Subscribe(func(v int) { got = append(got, "a") })
	b.Subscribe(func(v int) { got = append(got, "b") })

	b.Publish(1)

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected [a b], got %v", got)
	}
}

func TestBrokerSynchronousDelivery(t *testing.T) {
	b := NewBroker[Drag]()
	var last Drag
	b.Subscribe(func(d Drag) { last = d })

	b.Publish(Drag{Direction: mgl64.Vec2{1, 0}, Magnitude: 0.5})

	// delivered before Publish returned
	if last.Magnitude != 0.5 {
		t.Errorf("expected magnitude 0.5, got %f", last.Magnitude)
	}
}

func TestSubscriptionClose(t *testing.T) {
	b := NewBroker[int]()
	count := 0
	sub := b.Subscribe(func(int) { count++ })

	b.Publish(1)
	sub.Close()
	sub.Close()
	b.Publish(2)

	if count != 1 {
		t.Errorf("expected 1 delivery, got %d", count)
	}
	if b.Len() != 0 {
		t.Errorf("expected 0 subscriptions, got %d", b.Len())
	}

	var nilSub *Subscription
	nilSub.Close()
}

func TestCloseDuringPublish(t *testing.T) {
	b := NewBroker[int]()
	count := 0
	var first *Subscription
	first = b.Subscribe(func(int) {
		count++
		first.Close()
	})
	b.Subscribe(func(int) { count++ })

	b.Publish(1)
	b.Publish(2)

	if count != 3 {
		t.Errorf("expected 3 deliveries, got %d", count)
	}
}
