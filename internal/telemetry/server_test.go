package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Faultbox/orrery/internal/solar"
)

func testSnapshot(t float64) solar.Snapshot {
	return solar.Snapshot{
		Time:      t,
		TimeScale: 1,
		Bodies: []solar.BodyState{
			{Name: "Sun", Kind: "sun", Size: 1.5},
			{Name: "Earth", Kind: "planet", Parent: "Sun", Position: [3]float32{0, 0, 10}, Size: 0.5},
		},
	}
}

func TestStateBeforePublish(t *testing.T) {
	s := New(time.Second)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/state", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rr.Code)
	}
}

func TestStateReturnsJSON(t *testing.T) {
	s := New(time.Second)
	s.Publish(testSnapshot(4.5))

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/state", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var got solar.Snapshot
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Time != 4.5 || len(got.Bodies) != 2 || got.Bodies[1].Parent != "Sun" {
		t.Errorf("unexpected snapshot %+v", got)
	}
}

func TestStateRejectsPost(t *testing.T) {
	s := New(time.Second)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/state", nil))

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) solar.Snapshot {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var snap solar.Snapshot
	if err := conn.ReadJSON(&snap); err != nil {
		t.Fatalf("read: %v", err)
	}
	return snap
}

func waitClients(t *testing.T, s *Server, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount = %d, want %d", s.ClientCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWebsocketReceivesCurrentAndBroadcast(t *testing.T) {
	s := New(time.Hour)
	s.Publish(testSnapshot(1))

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	if got := readSnapshot(t, conn); got.Time != 1 {
		t.Errorf("initial Time = %v, want 1", got.Time)
	}
	waitClients(t, s, 1)

	s.Publish(testSnapshot(2))
	data, _ := s.snapshot()
	s.broadcast(data)

	if got := readSnapshot(t, conn); got.Time != 2 {
		t.Errorf("broadcast Time = %v, want 2", got.Time)
	}
}

func TestClientDisconnectUnregisters(t *testing.T) {
	s := New(time.Hour)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	waitClients(t, s, 1)

	conn.Close()
	waitClients(t, s, 0)
}

func TestSlowClientDropped(t *testing.T) {
	s := New(time.Hour)

	slow := &client{send: make(chan []byte, 1), addr: "slow"}
	fast := &client{send: make(chan []byte, 4), addr: "fast"}
	s.clients[slow] = struct{}{}
	s.clients[fast] = struct{}{}

	s.broadcast([]byte("a"))
	s.broadcast([]byte("b"))

	if _, ok := s.clients[slow]; ok {
		t.Error("slow client should be dropped")
	}
	if _, ok := s.clients[fast]; !ok {
		t.Error("fast client should remain")
	}

	// The dropped client's queue is closed after its buffered message.
	<-slow.send
	if _, ok := <-slow.send; ok {
		t.Error("slow client's queue should be closed")
	}
	if len(fast.send) != 2 {
		t.Errorf("fast client has %d queued, want 2", len(fast.send))
	}
}

func TestStartAndShutdown(t *testing.T) {
	s := New(10 * time.Millisecond)
	addr, err := s.Start("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitClients(t, s, 1)

	// The broadcast loop picks up a publish without an explicit call.
	s.Publish(testSnapshot(7))
	if got := readSnapshot(t, conn); got.Time != 7 {
		t.Errorf("Time = %v, want 7", got.Time)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
	if s.ClientCount() != 0 {
		t.Errorf("ClientCount after shutdown = %d", s.ClientCount())
	}
}
