package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/studyhub/studyhub-backend/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // tighten for production deployments
	},
}

// sendJSON enqueues onto the client's Send channel; writing the connection
// directly would race with writePump.
func sendJSON(client *Client, data interface{}) {
	msg, err := json.Marshal(data)
	if err != nil {
		log.Println("ws marshal error:", err)
		return
	}
	select {
	case client.Send <- msg:
	default:
	}
}

// HandleLeaderboardWebSocket upgrades an authenticated client onto the
// leaderboard event stream. Browsers cannot set headers on ws dials, so the
// token rides in the query string.
func HandleLeaderboardWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied."})
		return
	}
	claims, err := utils.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid."})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws upgrade failed:", err)
		return
	}
	client := H.Register(conn)
	defer H.Unregister(conn)

	log.Printf("leaderboard ws connected: userID=%s", claims.UserID)
	sendJSON(client, gin.H{"type": "connected", "message": "Connected to leaderboard"})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	log.Printf("leaderboard ws disconnected: userID=%s", claims.UserID)
	conn.Close()
}
