package controllers

import (
	"context"
	"net/http"

	"github.com/RicardoOchGeorges/Friskly-riktiga/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// POST /coach/advice  { "foods": ["rice", "salmon"] }
func GetFoodAdvice(c *gin.Context) {
	var req struct {
		Foods []string `json:"foods"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	advice, err := services.NewCoachService().FoodAdvice(c.Request.Context(), req.Foods)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

// POST /coach/chat  { "message": "...", "history": [{"role":"user","content":"..."}] }
func CoachChat(c *gin.Context) {
	var req struct {
		Message string                 `json:"message"`
		History []services.ChatMessage `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	reply, err := services.NewCoachService().Chat(c.Request.Context(), req.Message, req.History)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

var adviceUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

type adviceFrame struct {
	Type    string `json:"type"` // "token", "done", "error"
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// GET /coach/advice/stream — websocket. The client sends one JSON frame
// {"foods": [...]}; the server relays advice tokens and closes after the
// terminal frame. Dropping the connection cancels the upstream request.
func FoodAdviceStreamWS(c *gin.Context) {
	conn, err := adviceUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req struct {
		Foods []string `json:"foods"`
	}
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(adviceFrame{Type: "error", Error: "invalid request frame"})
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// read loop ends on client close/error → cancel the producer
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	services.NewCoachService().StreamFoodAdvice(ctx, req.Foods, services.StreamHandler{
		OnToken: func(token string) {
			if err := conn.WriteJSON(adviceFrame{Type: "token", Content: token}); err != nil {
				cancel()
			}
		},
		OnComplete: func(full string) {
			_ = conn.WriteJSON(adviceFrame{Type: "done", Content: full})
		},
		OnError: func(err error) {
			_ = conn.WriteJSON(adviceFrame{Type: "error", Error: err.Error()})
		},
	})
}
