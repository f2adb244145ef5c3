package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/service"
	"ai-solutions-go/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	maxFrameSize = 64 << 10
	idleTimeout  = 2 * time.Minute
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatHandler exposes the chatbot over HTTP and WebSocket.
type ChatHandler struct {
	chatService service.ChatService
	fallback    string
}

// NewChatHandler creates a ChatHandler. fallback is shown to the visitor when a turn fails.
func NewChatHandler(chatService service.ChatService, fallback string) *ChatHandler {
	return &ChatHandler{chatService: chatService, fallback: fallback}
}

// Submit handles POST /api/v1/chat.
func (h *ChatHandler) Submit(c *gin.Context) {
	var req model.ChatTurnRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.chatService.SubmitChatTurn(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMessage) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":    http.StatusServiceUnavailable,
			"message": turnFailureMessage(err),
			"data":    model.ChatTurnResponse{Response: h.fallback},
		})
		return
	}
	success(c, http.StatusOK, "success", resp)
}

type socketReply struct {
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Socket handles GET /api/v1/chat/ws. Each text frame carries one ChatTurnRequest and is answered
// with one reply frame. A frame that cannot be decoded or fails validation gets an error frame;
// a failed turn is answered with the fallback text.
func (h *ChatHandler) Socket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WebSocket upgrade failed", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(idleTimeout))
	log.Infof("chat socket opened from %s", c.ClientIP())

	ctx := c.Request.Context()
	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnf("chat socket closed unexpectedly: %v", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(idleTimeout))

		reply := socketReply{}
		var req model.ChatTurnRequest
		if err := json.Unmarshal(frame, &req); err != nil {
			reply.Error = "invalid request payload: " + err.Error()
			if err := conn.WriteJSON(reply); err != nil {
				log.Error("failed to write chat reply", err)
				return
			}
			continue
		}

		resp, err := h.chatService.SubmitChatTurn(ctx, req)
		switch {
		case errors.Is(err, service.ErrInvalidMessage):
			reply.Error = err.Error()
		case err != nil:
			log.Warnw("chat turn failed", "reason", turnFailureMessage(err))
			reply.Response = h.fallback
		default:
			reply.Response = resp.Response
		}
		if err := conn.WriteJSON(reply); err != nil {
			log.Error("failed to write chat reply", err)
			return
		}
	}
}

func turnFailureMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrModelTimeout):
		return "model timed out"
	case errors.Is(err, service.ErrModelCall):
		return "model unavailable"
	case errors.Is(err, service.ErrContentRead):
		return "site content unavailable"
	default:
		return "chat unavailable"
	}
}
