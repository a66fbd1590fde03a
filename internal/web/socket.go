package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/ai-heroes/internal/generator"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// socketRequest is the incoming WebSocket message format.
type socketRequest struct {
	Type string `json:"type"` // "generate" or "status"
}

// socketMessage is the outgoing WebSocket message format.
type socketMessage struct {
	Type    string            `json:"type"` // "started", "completed", "status" or "error"
	JobID   string            `json:"job_id,omitempty"`
	State   generator.State   `json:"state,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Message string            `json:"message,omitempty"`
}

// outboxSize bounds the messages queued for a slow client.
const outboxSize = 16

func eventMessage(ev generator.Event) socketMessage {
	msg := socketMessage{Type: string(ev.Type), JobID: ev.JobID, State: ev.State}
	if ev.Result != nil {
		msg.Fields = resultFields(ev.Result).Map()
	}
	return msg
}

// handleWebSocket serves one page instance. The connection owns its
// simulator, so at most one generation is in flight per page and no page
// sees another page's results.
func (s *Site) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", "err", err)
		return
	}
	defer conn.Close()

	// Only the writer goroutine touches the connection for writing.
	out := make(chan socketMessage, outboxSize)
	done := make(chan struct{})
	send := func(msg socketMessage) {
		select {
		case out <- msg:
		case <-done:
		default:
			s.logger.Warn("websocket client too slow, dropping message", "type", msg.Type)
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case msg := <-out:
				if err := conn.WriteJSON(msg); err != nil {
					s.logger.Debug("websocket write", "err", err)
					return
				}
			case <-done:
				return
			}
		}
	}()

	sim := s.pageSim()
	unsubscribe := sim.Subscribe(func(ev generator.Event) { send(eventMessage(ev)) })

	defer func() {
		unsubscribe()
		close(done)
		wg.Wait()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket read", "err", err)
			}
			return
		}

		var req socketRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			send(socketMessage{Type: "error", Message: "invalid message format"})
			continue
		}

		switch req.Type {
		case "generate":
			// Success is reported through the started event.
			if _, err := sim.Trigger(); err != nil {
				msg := socketMessage{Type: "error", Message: err.Error()}
				if errors.Is(err, generator.ErrBusy) {
					msg.State = generator.StateGenerating
				}
				send(msg)
			}
		case "status":
			st := sim.Status()
			send(socketMessage{Type: "status", JobID: st.JobID, State: st.State, Fields: resultFields(st.Last).Map()})
		default:
			send(socketMessage{Type: "error", Message: "unknown message type: " + req.Type})
		}
	}
}
