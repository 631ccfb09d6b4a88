package sse

import (
	"sync"
)

// Event is a server-sent event published to a topic. Back-fill runs use the
// employee id as the topic so a client can follow one run.
type Event struct {
	Topic string
	Name  string
	Data  interface{}
}

// Hub fans events out to topic subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber for a topic and returns the event channel
// plus a cleanup function that must be called when the consumer is done.
func (h *Hub) Subscribe(topic string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 16)

	if h.subscribers[topic] == nil {
		h.subscribers[topic] = make(map[chan Event]struct{})
	}
	h.subscribers[topic][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[topic], ch)
		close(ch)
		if len(h.subscribers[topic]) == 0 {
			delete(h.subscribers, topic)
		}
	}

	return ch, cleanup
}

// Publish delivers an event to every subscriber of the topic. Delivery is
// non-blocking; slow consumers drop events rather than stall the publisher.
func (h *Hub) Publish(topic string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[topic] {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscribers for a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[topic])
}
