// Package bus is a small in-process publish/subscribe bus with retained
// messages, used to share runtime state between services.
package bus

import (
	"strings"
	"sync"
)

// Topic is a path such as {"clock", "ahb"}.
type Topic []string

func (t Topic) String() string { return strings.Join(t, "/") }

func (t Topic) key() string { return strings.Join(t, "\x00") }

// Message is one publication.
type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
}

// Subscription receives messages published to exactly one topic.
type Subscription struct {
	topic Topic
	ch    chan *Message
	conn  *Connection
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

type entry struct {
	subs     []*Subscription
	retained *Message
}

// Bus routes messages by topic. Subscribers that fall behind lose their
// oldest queued message, never the newest.
type Bus struct {
	mu     sync.Mutex
	topics map[string]*entry
	qLen   int
}

// NewBus creates a bus whose subscriptions queue up to queueLen messages.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{topics: make(map[string]*entry), qLen: queueLen}
}

func (b *Bus) entry(t Topic) *entry {
	k := t.key()
	e := b.topics[k]
	if e == nil {
		e = &entry{}
		b.topics[k] = e
	}
	return e
}

func deliver(ch chan *Message, m *Message) {
	for {
		select {
		case ch <- m:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Publish delivers msg to every subscriber of its topic. A retained message
// replaces the topic's retained value; a retained nil payload clears it.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.topics[msg.Topic.key()]
	if e == nil {
		if !msg.Retained {
			return
		}
		e = b.entry(msg.Topic)
	}
	for _, s := range e.subs {
		deliver(s.ch, msg)
	}
	if msg.Retained {
		if msg.Payload == nil {
			e.retained = nil
		} else {
			e.retained = msg
		}
	}
	if e.retained == nil && len(e.subs) == 0 {
		delete(b.topics, msg.Topic.key())
	}
}

// Retained returns the retained message on t, if any.
func (b *Bus) Retained(t Topic) (*Message, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if e := b.topics[t.key()]; e != nil && e.retained != nil {
		return e.retained, true
	}
	return nil, false
}

func (b *Bus) subscribe(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e := b.entry(s.topic)
	e.subs = append(e.subs, s)
	if e.retained != nil {
		deliver(s.ch, e.retained)
	}
}

func (b *Bus) unsubscribe(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	k := s.topic.key()
	e := b.topics[k]
	if e == nil {
		return
	}
	for i, x := range e.subs {
		if x == s {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			break
		}
	}
	if len(e.subs) == 0 && e.retained == nil {
		delete(b.topics, k)
	}
}

// Connection groups the subscriptions of one client so they can be dropped
// together.
type Connection struct {
	bus  *Bus
	id   string
	mu   sync.Mutex
	subs []*Subscription
}

// NewConnection creates a connection bound to this bus.
func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{bus: b, id: id}
}

func (c *Connection) ID() string { return c.id }

// Publish sends msg via the bus.
func (c *Connection) Publish(msg *Message) { c.bus.Publish(msg) }

// Subscribe registers a subscription owned by this connection.
func (c *Connection) Subscribe(t Topic) *Subscription {
	s := &Subscription{topic: append(Topic(nil), t...), ch: make(chan *Message, c.bus.qLen), conn: c}
	c.mu.Lock()
	c.subs = append(c.subs, s)
	c.mu.Unlock()
	c.bus.subscribe(s)
	return s
}

// Unsubscribe removes s and closes its channel.
func (c *Connection) Unsubscribe(s *Subscription) {
	c.mu.Lock()
	found := false
	for i, x := range c.subs {
		if x == s {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			found = true
			break
		}
	}
	c.mu.Unlock()
	if !found {
		return
	}
	c.bus.unsubscribe(s)
	close(s.ch)
}

// Disconnect unsubscribes everything the connection holds.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()
	for _, s := range subs {
		c.bus.unsubscribe(s)
		close(s.ch)
	}
}
