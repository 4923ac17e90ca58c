// controllers/progress_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/Akralan/NutriPlanner-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ProgressController struct {
	Hub *services.ProgressHub
}

func NewProgressController(hub *services.ProgressHub) *ProgressController {
	return &ProgressController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// ProgressWS handles GET /users/:id/progress/ws and streams
// progress.updated events emitted after meal validations.
func (h *ProgressController) ProgressWS(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.ProgressClient{UserID: userID, Conn: conn}
	h.Hub.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.Hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.Hub.Unregister(cl)
			return
		}
	}
}
