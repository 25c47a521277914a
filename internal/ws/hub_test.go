package ws

import (
	"encoding/json"
	"testing"
)

func testClient(h *Hub, id string) *Client {
	c := NewClient(id, h, nil, nil)
	h.Register(c)
	return c
}

func receive(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case frame := <-c.send:
		var env Envelope
		if err := json.Unmarshal(frame, &env); err != nil {
			t.Fatalf("invalid frame: %v", err)
		}
		return env
	default:
		t.Fatalf("client %s received nothing", c.id)
		return Envelope{}
	}
}

func TestToConnDeliversToSingleClient(t *testing.T) {
	h := NewHub()
	a := testClient(h, "conn-a")
	b := testClient(h, "conn-b")

	h.ToConn("conn-a", "connection_ack", map[string]string{"status": "Connected"})

	env := receive(t, a)
	if env.Type != "connection_ack" {
		t.Errorf("type = %s, want connection_ack", env.Type)
	}
	if len(b.send) != 0 {
		t.Error("other clients must not receive targeted events")
	}
}

func TestToRoomDeliversToGroupOnly(t *testing.T) {
	h := NewHub()
	a := testClient(h, "conn-a")
	b := testClient(h, "conn-b")
	c := testClient(h, "conn-c")

	h.Join("1234", "conn-a")
	h.Join("1234", "conn-b")

	h.ToRoom("1234", "game_started", map[string]int{"word_length": 5})

	if env := receive(t, a); env.Type != "game_started" {
		t.Errorf("a got %s, want game_started", env.Type)
	}
	if env := receive(t, b); env.Type != "game_started" {
		t.Errorf("b got %s, want game_started", env.Type)
	}
	if len(c.send) != 0 {
		t.Error("non-members must not receive room events")
	}
}

func TestLeaveStopsDelivery(t *testing.T) {
	h := NewHub()
	a := testClient(h, "conn-a")

	h.Join("1234", "conn-a")
	h.Leave("1234", "conn-a")

	h.ToRoom("1234", "game_update", nil)

	if len(a.send) != 0 {
		t.Error("departed member still received a room event")
	}
}

func TestFullQueueDropsFrameWithoutBlocking(t *testing.T) {
	h := NewHub()
	a := testClient(h, "conn-a")

	for i := 0; i < sendQueueSize; i++ {
		h.ToConn("conn-a", "typing_update", nil)
	}

	done := make(chan struct{})
	go func() {
		// Must return immediately even though the queue is full.
		h.ToConn("conn-a", "typing_update", nil)
		close(done)
	}()
	<-done

	if len(a.send) != sendQueueSize {
		t.Errorf("queue length = %d, want %d", len(a.send), sendQueueSize)
	}
}
