// Package publish implements the synchronous broadcast channel the style
// engine uses to propagate theme changes to live widgets.
//
// The publisher is single-threaded by contract: all calls must happen on the
// UI thread. Callbacks run synchronously, in subscription order, on the
// caller's goroutine, and must not subscribe or unsubscribe during delivery.
package publish

import "github.com/google/uuid"

// Callback is invoked on every publication of the subscribed channel.
// Callbacks must be idempotent.
type Callback func()

type subscriber struct {
	id string
	fn Callback
}

// Publisher is a named-channel subscribe/notify table.
type Publisher struct {
	channels map[string][]subscriber
}

// NewPublisher returns an empty publisher.
func NewPublisher() *Publisher {
	return &Publisher{channels: make(map[string][]subscriber)}
}

// Subscribe registers fn on the channel and returns a scoped handle. The
// caller owns the handle and must Close it when the subscriber goes away;
// a dropped handle is a leak.
func (p *Publisher) Subscribe(channel string, fn Callback) *Subscription {
	id := uuid.New().String()[:8]
	p.channels[channel] = append(p.channels[channel], subscriber{id: id, fn: fn})
	return &Subscription{publisher: p, channel: channel, id: id}
}

// Unsubscribe removes the subscriber with the given id. Unknown ids are a
// no-op.
func (p *Publisher) Unsubscribe(channel, id string) {
	subs := p.channels[channel]
	for i, s := range subs {
		if s.id == id {
			p.channels[channel] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish invokes every callback registered on the channel, in subscription
// order.
func (p *Publisher) Publish(channel string) {
	for _, s := range p.channels[channel] {
		s.fn()
	}
}

// Len reports the number of live subscribers on a channel.
func (p *Publisher) Len(channel string) int {
	return len(p.channels[channel])
}

// Subscription is the scoped handle returned by Subscribe. Closing it
// removes the subscriber; Close is idempotent.
type Subscription struct {
	publisher *Publisher
	channel   string
	id        string
	closed    bool
}

// ID returns the unique subscriber id.
func (s *Subscription) ID() string { return s.id }

// Close unsubscribes. Safe to call more than once.
func (s *Subscription) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.publisher.Unsubscribe(s.channel, s.id)
}
