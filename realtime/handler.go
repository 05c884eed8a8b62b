package realtime

import (
	"PulmoCare/middlewares"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Cross-origin policy is handled by the CORS middleware.
		return true
	},
}

// ServeWS upgrades an authenticated request to a websocket connection and
// registers it with the hub under the session's user id.
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing session identity"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("Websocket upgrade failed: %v", err)
			return
		}

		client := newClient(hub, conn, userID)
		hub.register(client)

		go client.writePump()
		go client.readPump()
	}
}
