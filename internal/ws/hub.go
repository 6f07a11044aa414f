package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// defaultWriteWait bounds every socket write so a subscriber that stops
// reading cannot wedge the hub behind its full TCP buffers.
const defaultWriteWait = 10 * time.Second

const (
	EventNewPlayer    = "newPlayer"
	EventNextQuestion = "nextQuestion"
	EventGameEnded    = "gameEnded"
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Hub fans session events out to every viewer connected to a game. Delivery
// is fire-and-forget: clients that connect after a publish never see it, and
// a failed write drops the connection.
type Hub struct {
	mu        sync.RWMutex
	games     map[uint]map[*websocket.Conn]bool
	writeWait time.Duration
}

func NewHub() *Hub {
	return &Hub{
		games:     make(map[uint]map[*websocket.Conn]bool),
		writeWait: defaultWriteWait,
	}
}

func (h *Hub) AddConnection(gameID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.games[gameID] == nil {
		h.games[gameID] = make(map[*websocket.Conn]bool)
	}
	h.games[gameID][conn] = true
	log.Printf("ws: client connected to game %d (total: %d)", gameID, len(h.games[gameID]))
}

func (h *Hub) RemoveConnection(gameID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.games[gameID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.games, gameID)
		}
		log.Printf("ws: client disconnected from game %d", gameID)
	}
}

// Broadcast is scoped to a single game's subscribers. Events never cross
// into other running games.
func (h *Hub) Broadcast(gameID uint, event Event) {
	// Full lock: dead connections are pruned during the write loop.
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.games[gameID]
	if !ok {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
