package bus

import (
	"testing"
	"time"
)

func expect(t *testing.T, s *Subscription, want any) {
	t.Helper()
	select {
	case got, ok := <-s.Channel():
		if !ok {
			t.Fatalf("%v: channel closed", s.Topic())
		}
		if got.Payload != want {
			t.Fatalf("%v: payload %v, want %v", s.Topic(), got.Payload, want)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("%v: timeout waiting for %v", s.Topic(), want)
	}
}

func expectNothing(t *testing.T, s *Subscription) {
	t.Helper()
	select {
	case got := <-s.Channel():
		t.Fatalf("%v: unexpected %v", s.Topic(), got.Payload)
	default:
	}
}

func TestBasicPubSub(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")
	s := c.Subscribe(Topic{"clock", "ahb"})
	other := c.Subscribe(Topic{"clock", "ipg"})

	c.Publish(&Message{Topic: Topic{"clock", "ahb"}, Payload: uint32(500)})
	expect(t, s, uint32(500))
	expectNothing(t, other)
}

func TestRetainedMessage(t *testing.T) {
	b := NewBus(2)
	c := b.NewConnection("test")
	c.Publish(&Message{Topic: Topic{"board", "mode"}, Payload: "overdrive", Retained: true})

	s := c.Subscribe(Topic{"board", "mode"})
	expect(t, s, "overdrive")

	if m, ok := b.Retained(Topic{"board", "mode"}); !ok || m.Payload != "overdrive" {
		t.Fatalf("retained = %v %v", m, ok)
	}
	c.Publish(&Message{Topic: Topic{"board", "mode"}, Retained: true})
	expect(t, s, nil)
	if _, ok := b.Retained(Topic{"board", "mode"}); ok {
		t.Fatal("nil retained payload did not clear")
	}
}

func TestNonRetainedWithoutSubscribersIsDropped(t *testing.T) {
	b := NewBus(2)
	c := b.NewConnection("test")
	c.Publish(&Message{Topic: Topic{"x"}, Payload: 1})
	s := c.Subscribe(Topic{"x"})
	expectNothing(t, s)
}

func TestSlowSubscriberKeepsNewest(t *testing.T) {
	b := NewBus(2)
	c := b.NewConnection("test")
	s := c.Subscribe(Topic{"n"})
	for i := 1; i <= 5; i++ {
		c.Publish(&Message{Topic: Topic{"n"}, Payload: i})
	}
	expect(t, s, 4)
	expect(t, s, 5)
	expectNothing(t, s)
}

func TestUnsubscribeAndDisconnect(t *testing.T) {
	b := NewBus(2)
	c := b.NewConnection("test")
	s1 := c.Subscribe(Topic{"a"})
	s2 := c.Subscribe(Topic{"b"})

	s1.Unsubscribe()
	if _, ok := <-s1.Channel(); ok {
		t.Fatal("channel open after unsubscribe")
	}
	s1.Unsubscribe()

	c.Disconnect()
	if _, ok := <-s2.Channel(); ok {
		t.Fatal("channel open after disconnect")
	}
	if len(b.topics) != 0 {
		t.Fatalf("%d topics left", len(b.topics))
	}
}

func TestTopicString(t *testing.T) {
	if got := (Topic{"clock", "uart"}).String(); got != "clock/uart" {
		t.Fatalf("got %q", got)
	}
}
