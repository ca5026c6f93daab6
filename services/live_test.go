package services

import (
	"encoding/json"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeLiveConn records payloads and flags overlapping WriteMessage calls,
// which the real connection forbids.
type fakeLiveConn struct {
	msgs       chan []byte
	failWrites bool
	inflight   int32
	overlapped int32
	closed     int32
}

func newFakeLiveConn() *fakeLiveConn {
	return &fakeLiveConn{msgs: make(chan []byte, 64)}
}

func (c *fakeLiveConn) WriteMessage(messageType int, data []byte) error {
	if !atomic.CompareAndSwapInt32(&c.inflight, 0, 1) {
		atomic.StoreInt32(&c.overlapped, 1)
	}
	runtime.Gosched()
	atomic.StoreInt32(&c.inflight, 0)

	if c.failWrites {
		return errors.New("write on closed connection")
	}
	c.msgs <- append([]byte(nil), data...)
	return nil
}

func (c *fakeLiveConn) Close() error {
	atomic.StoreInt32(&c.closed, 1)
	return nil
}

func receiveMessage(t *testing.T, conn *fakeLiveConn) []byte {
	t.Helper()

	select {
	case msg := <-conn.msgs:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a live message")
		return nil
	}
}

func expectNoMessage(t *testing.T, conn *fakeLiveConn) {
	t.Helper()

	select {
	case msg := <-conn.msgs:
		t.Fatalf("unexpected live message: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBroadcastStandingsConcurrent(t *testing.T) {
	hub := NewLiveHub()
	conns := []*fakeLiveConn{newFakeLiveConn(), newFakeLiveConn(), newFakeLiveConn()}
	for _, conn := range conns {
		hub.Subscribe(7, conn)
	}

	entries := []StandingsEntry{{Rank: 1, TeamID: 1, UserID: 1, Score: 50}}

	const broadcasts = 8
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < broadcasts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			hub.BroadcastStandings(7, entries)
		}()
	}
	close(start)
	wg.Wait()

	for i, conn := range conns {
		for n := 0; n < broadcasts; n++ {
			receiveMessage(t, conn)
		}
		if atomic.LoadInt32(&conn.overlapped) != 0 {
			t.Fatalf("subscriber %d saw overlapping connection writes", i)
		}
	}
}

func TestSendStandingsTargetsOneSubscriber(t *testing.T) {
	hub := NewLiveHub()
	existing := newFakeLiveConn()
	joining := newFakeLiveConn()
	hub.Subscribe(3, existing)
	sub := hub.Subscribe(3, joining)

	hub.SendStandings(sub, 3, []StandingsEntry{{Rank: 1, TeamID: 2, UserID: 5, Score: 80}})

	msg := receiveMessage(t, joining)
	var payload struct {
		Type      string `json:"type"`
		ContestID uint   `json:"contest_id"`
	}
	if err := json.Unmarshal(msg, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Type != "standings" || payload.ContestID != 3 {
		t.Fatalf("expected a standings payload for contest 3, got %+v", payload)
	}

	// The snapshot for a newly joined subscriber must not reach the others.
	expectNoMessage(t, existing)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewLiveHub()
	conn := newFakeLiveConn()
	sub := hub.Subscribe(1, conn)
	hub.Unsubscribe(1, sub)

	if got := hub.SubscriberCount(); got != 0 {
		t.Fatalf("expected 0 subscribers, got %d", got)
	}

	hub.BroadcastStandings(1, nil)
	expectNoMessage(t, conn)
}

func TestFailedWriteDropsSubscriber(t *testing.T) {
	hub := NewLiveHub()
	conn := newFakeLiveConn()
	conn.failWrites = true
	hub.Subscribe(1, conn)

	hub.BroadcastStandings(1, nil)

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber was not dropped after a failed write")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if atomic.LoadInt32(&conn.closed) == 0 {
		t.Fatalf("connection was not closed after a failed write")
	}
}
