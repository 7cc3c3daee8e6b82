package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"FormRelay_LandingProject/internal/feed"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const feedPingInterval = 30 * time.Second

type FeedHandler struct {
	broadcaster *feed.Broadcaster
}

func NewFeedHandler(broadcaster *feed.Broadcaster) *FeedHandler {
	return &FeedHandler{broadcaster: broadcaster}
}

// HandleSubmissionFeed godoc
// @Summary      Live submission feed (WebSocket)
// @Description  Streams each accepted submission as a JSON event.
// @Description  **Note: this is not a standard HTTP API.**
// @Description  Connect with the `ws://` or `wss://` scheme. The operator key is
// @Description  passed as the `key` query parameter because WebSocket clients
// @Description  cannot always set headers.
// @Tags         WebSocket (Feed)
// @Param        key query string true "Operator key"
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      403 {object} map[string]string "Invalid admin key"
// @Router       /ws/submissions [get]
func (h *FeedHandler) HandleSubmissionFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("HandleSubmissionFeed(): failed to upgrade to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	events, cancel := h.broadcaster.Subscribe()
	defer cancel()
	log.Printf("HandleSubmissionFeed(): feed client connected from %s (%d total)", c.ClientIP(), h.broadcaster.SubscriberCount())

	// The read side only exists to notice the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(feedPingInterval)
	defer ticker.Stop()

	for {
		select {
		case record, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(record); err != nil {
				log.Printf("HandleSubmissionFeed(): failed to write event %s: %v", record.ID, err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			log.Printf("HandleSubmissionFeed(): feed client from %s disconnected", c.ClientIP())
			return
		}
	}
}
