package spectate

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

type view struct {
	Score int    `json:"score"`
	State string `json:"state"`
}

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() != want {
		if time.Now().After(deadline) {
			t.Fatalf("watchers = %d, expected %d", hub.Count(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) (string, view) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}

	var msg struct {
		Player   string `json:"player"`
		Snapshot view   `json:"snapshot"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("invalid frame %s: %v", data, err)
	}
	return msg.Player, msg.Snapshot
}

func TestPublishReachesWatchers(t *testing.T) {
	hub, url := startHub(t)
	a := dial(t, url)
	b := dial(t, url)
	waitForCount(t, hub, 2)

	if err := hub.Publish("ana", view{Score: 4, State: "running"}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	for _, conn := range []*websocket.Conn{a, b} {
		player, v := readFrame(t, conn)
		if player != "ana" {
			t.Errorf("player = %q, expected ana", player)
		}
		if v.Score != 4 || v.State != "running" {
			t.Errorf("snapshot = %+v", v)
		}
	}
}

func TestCrossOriginWatcher(t *testing.T) {
	hub, url := startHub(t)

	header := http.Header{"Origin": []string{"https://viewer.example"}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("Dial from another origin failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	waitForCount(t, hub, 1)

	if err := hub.Publish("ana", view{Score: 2}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if player, v := readFrame(t, conn); player != "ana" || v.Score != 2 {
		t.Errorf("frame = %s %+v, expected ana with score 2", player, v)
	}
}

func TestFramesKeepOrder(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	waitForCount(t, hub, 1)

	for i := range 5 {
		hub.Publish("bo", view{Score: i})
	}
	for i := range 5 {
		if _, v := readFrame(t, conn); v.Score != i {
			t.Fatalf("frame %d has score %d", i, v.Score)
		}
	}
}

func TestWatcherMessagesIgnored(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	waitForCount(t, hub, 1)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"turn":"left"}`)); err != nil {
		t.Fatalf("WriteMessage failed: %v", err)
	}

	hub.Publish("cy", view{Score: 1})
	if player, _ := readFrame(t, conn); player != "cy" {
		t.Errorf("player = %q, expected cy", player)
	}
	if hub.Count() != 1 {
		t.Errorf("watchers = %d, expected 1", hub.Count())
	}
}

func TestWatcherDisconnect(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	waitForCount(t, hub, 1)

	conn.Close()
	waitForCount(t, hub, 0)

	if err := hub.Publish("ana", view{}); err != nil {
		t.Errorf("Publish without watchers failed: %v", err)
	}
}

func TestCloseDisconnectsWatchers(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	waitForCount(t, hub, 1)

	hub.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("watcher should be disconnected after Close")
	}

	// New watchers are refused once closed.
	late, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		defer late.Close()
		late.SetReadDeadline(time.Now().Add(2 * time.Second))
		if _, _, err := late.ReadMessage(); err == nil {
			t.Error("late watcher should be dropped")
		}
	}
	if hub.Count() != 0 {
		t.Errorf("watchers = %d, expected 0", hub.Count())
	}
}

func TestPublishRejectsUnencodable(t *testing.T) {
	hub := NewHub(nil)
	if err := hub.Publish("ana", make(chan int)); err == nil {
		t.Error("Publish should fail for values JSON cannot encode")
	}
}

func TestServeStopsWithContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Serve(ctx, addr) }()

	var conn *websocket.Conn
	deadline := time.Now().Add(2 * time.Second)
	for {
		conn, _, err = websocket.DefaultDialer.Dial("ws://"+addr+Path, nil)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Dial failed: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	defer conn.Close()
	waitForCount(t, hub, 1)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not stop")
	}
}

func TestServeBadAddress(t *testing.T) {
	hub := NewHub(nil)
	if err := hub.Serve(context.Background(), "not-an-address"); err == nil {
		t.Error("Serve should fail for an invalid address")
	}
}
