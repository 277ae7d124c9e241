package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"sales-backend/internal/live"
	"sales-backend/internal/middleware"
	"sales-backend/internal/models"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveHandler bridges the snapshot hub onto WebSocket connections.
type LiveHandler struct {
	Hub *live.Hub
}

func NewLiveHandler(hub *live.Hub) *LiveHandler {
	return &LiveHandler{Hub: hub}
}

// Stream upgrades to WebSocket and pushes sales snapshots as they change.
// Sellers are scoped to their own records.
func (h *LiveHandler) Stream(w http.ResponseWriter, r *http.Request) {
	var pred live.Predicate
	if role, _ := middleware.GetRoleFromContext(r.Context()); role == models.RoleSeller {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		pred = live.SellerOnly(strconv.Itoa(userID))
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Live] upgrade failed: %v", err)
		return
	}

	ch, cancel := h.Hub.Subscribe(pred)
	defer cancel()
	defer conn.Close()

	// Reader goroutine: its only job is to notice the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case snapshot, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(snapshot); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
