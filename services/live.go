// services/live.go - Live standings feed
package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// Send channel buffer size
const sendBufferSize = 16

// LiveConn is the slice of a websocket connection the hub writes to.
type LiveConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Subscriber is one websocket connection receiving standings updates for a
// contest. The underlying connection allows only a single concurrent
// writer, so every payload goes through the buffered send channel and is
// written by the subscriber's one writer goroutine.
type Subscriber struct {
	conn LiveConn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (s *Subscriber) enqueue(payload []byte) {
	select {
	case s.send <- payload:
	case <-s.done:
	default:
		// Slow consumer: drop this snapshot, the next broadcast supersedes it.
	}
}

func (s *Subscriber) stop() {
	s.once.Do(func() { close(s.done) })
}

// LiveHub tracks websocket subscribers per contest and pushes fresh
// standings to them after every affecting score update.
type LiveHub struct {
	mu          sync.RWMutex
	subscribers map[uint]map[*Subscriber]bool
}

func NewLiveHub() *LiveHub {
	return &LiveHub{
		subscribers: make(map[uint]map[*Subscriber]bool),
	}
}

func (h *LiveHub) Subscribe(contestID uint, conn LiveConn) *Subscriber {
	sub := &Subscriber{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	if h.subscribers[contestID] == nil {
		h.subscribers[contestID] = make(map[*Subscriber]bool)
	}
	h.subscribers[contestID][sub] = true
	h.mu.Unlock()

	go h.writeLoop(contestID, sub)

	return sub
}

func (h *LiveHub) Unsubscribe(contestID uint, sub *Subscriber) {
	h.mu.Lock()
	if subs := h.subscribers[contestID]; subs != nil {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.subscribers, contestID)
		}
	}
	h.mu.Unlock()

	sub.stop()
}

// writeLoop is the only goroutine that ever writes to the connection.
func (h *LiveHub) writeLoop(contestID uint, sub *Subscriber) {
	for {
		select {
		case payload := <-sub.send:
			if err := sub.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Printf("Dropping live subscriber for contest %d: %v", contestID, err)
				h.Unsubscribe(contestID, sub)
				sub.conn.Close()
				return
			}
		case <-sub.done:
			return
		}
	}
}

// BroadcastStandings fans the current standings of a contest out to all of
// its subscribers. Slow consumers lose intermediate snapshots, never the
// connection.
func (h *LiveHub) BroadcastStandings(contestID uint, entries []StandingsEntry) {
	payload, err := standingsPayload(contestID, entries)
	if err != nil {
		return
	}

	h.mu.RLock()
	subs := make([]*Subscriber, 0, len(h.subscribers[contestID]))
	for sub := range h.subscribers[contestID] {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		sub.enqueue(payload)
	}
}

// SendStandings pushes a snapshot to a single subscriber. Used for the
// initial push right after subscribing, which must not re-send standings
// to everyone else.
func (h *LiveHub) SendStandings(sub *Subscriber, contestID uint, entries []StandingsEntry) {
	payload, err := standingsPayload(contestID, entries)
	if err != nil {
		return
	}
	sub.enqueue(payload)
}

func standingsPayload(contestID uint, entries []StandingsEntry) ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":       "standings",
		"contest_id": contestID,
		"standings":  entries,
	})
}

// SubscriberCount is used by the health endpoint.
func (h *LiveHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, conns := range h.subscribers {
		total += len(conns)
	}
	return total
}
