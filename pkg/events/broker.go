package events

import (
	"context"
	"log/slog"
	"sync"
)

// Message is a notification delivered to a local subscriber.
type Message struct {
	Channel string
	Payload []byte
}

// subscriberBufferSize bounds each subscriber channel. A subscriber that
// falls this far behind starts losing messages; every consumer treats the
// feed as a wake-up signal and re-reads the database, so a drop costs
// latency, not correctness.
const subscriberBufferSize = 64

// Broker fans NOTIFY payloads out to in-process subscribers. It issues
// LISTEN on a channel's first subscriber and UNLISTEN on its last, so the
// dedicated connection only listens to channels somebody cares about.
type Broker struct {
	listener *NotifyListener

	mu   sync.Mutex
	subs map[string]map[chan Message]struct{}
}

// NewBroker creates a broker backed by the given listener.
// A nil listener is allowed for tests; the broker then only delivers
// messages injected through Broadcast.
func NewBroker(listener *NotifyListener) *Broker {
	return &Broker{
		listener: listener,
		subs:     make(map[string]map[chan Message]struct{}),
	}
}

// Subscribe registers a subscriber for a channel and returns the message
// stream plus a cancel function. The cancel function is idempotent.
func (b *Broker) Subscribe(ctx context.Context, channel string) (<-chan Message, func(), error) {
	ch := make(chan Message, subscriberBufferSize)

	b.mu.Lock()
	first := len(b.subs[channel]) == 0
	if b.subs[channel] == nil {
		b.subs[channel] = make(map[chan Message]struct{})
	}
	b.subs[channel][ch] = struct{}{}
	b.mu.Unlock()

	if first && b.listener != nil {
		if err := b.listener.Subscribe(ctx, channel); err != nil {
			b.remove(channel, ch)
			return nil, nil, err
		}
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			last := b.remove(channel, ch)
			if last && b.listener != nil {
				// Best effort: a failed UNLISTEN leaves a harmless extra
				// subscription on the connection.
				if err := b.listener.Unsubscribe(context.Background(), channel); err != nil {
					slog.Debug("UNLISTEN failed", "channel", channel, "error", err)
				}
			}
		})
	}

	return ch, cancel, nil
}

// Broadcast delivers a payload to every local subscriber of a channel.
// Called by the NotifyListener receive loop; also usable directly in tests.
func (b *Broker) Broadcast(channel string, payload []byte) {
	b.mu.Lock()
	targets := make([]chan Message, 0, len(b.subs[channel]))
	for ch := range b.subs[channel] {
		targets = append(targets, ch)
	}
	b.mu.Unlock()

	msg := Message{Channel: channel, Payload: payload}
	for _, ch := range targets {
		select {
		case ch <- msg:
		default:
			slog.Debug("Dropping event for slow subscriber", "channel", channel)
		}
	}
}

// remove deletes a subscriber and reports whether it was the channel's last.
func (b *Broker) remove(channel string, ch chan Message) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.subs[channel]
	if !ok {
		return false
	}
	if _, ok := set[ch]; !ok {
		return false
	}
	delete(set, ch)
	if len(set) == 0 {
		delete(b.subs, channel)
		return true
	}
	return false
}
