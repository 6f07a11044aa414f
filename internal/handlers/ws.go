package handlers

import (
	"log"
	"net/http"
	"strconv"

	"trivia-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      Subscribe to game events
// @Description  Connect via WebSocket to receive newPlayer, nextQuestion and gameEnded events
// @Tags         websocket
// @Param        id path int true "Game ID"
// @Router       /ws/games/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	gid := uint(gameID)
	h.hub.AddConnection(gid, conn)
	defer h.hub.RemoveConnection(gid, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
