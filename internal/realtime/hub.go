package realtime

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

// Message is the payload pushed to connected chat widgets.
type Message struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

const cannedReply = "Sorry, I didn't understand that."

// Hub broadcasts bot messages to every connected websocket client. It
// is constructed explicitly and injected where needed; there is no
// package-level instance to initialize.
type Hub struct {
	mu    sync.Mutex
	conns map[string]*websocket.Conn
	log   *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		conns: make(map[string]*websocket.Conn),
		log:   log,
	}
}

// Handler returns the http.Handler serving the websocket endpoint.
func (h *Hub) Handler() http.Handler {
	return websocket.Handler(h.serve)
}

func (h *Hub) serve(ws *websocket.Conn) {
	id := uuid.NewString()
	h.add(id, ws)
	defer h.remove(id)

	h.log.Info("client connected", zap.String("conn_id", id))

	for {
		var msg string
		if err := websocket.Message.Receive(ws, &msg); err != nil {
			h.log.Info("client disconnected", zap.String("conn_id", id))
			return
		}
		// Any inbound socket message gets the canned bot reply,
		// broadcast to all listeners. The socket path is not wired
		// into the task flow.
		h.Broadcast(Message{Sender: "Bot", Text: cannedReply})
	}
}

// Broadcast pushes a message to all connected clients, dropping
// connections that fail to accept it.
func (h *Hub) Broadcast(m Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ws := range h.conns {
		if err := websocket.JSON.Send(ws, m); err != nil {
			h.log.Warn("broadcast failed, dropping client",
				zap.String("conn_id", id), zap.Error(err))
			ws.Close()
			delete(h.conns, id)
		}
	}
}

func (h *Hub) add(id string, ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[id] = ws
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, id)
}
