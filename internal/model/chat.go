package model

// Chat roles accepted from the widget.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one entry of the conversation history kept by the client.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user model"`
	Content string `json:"content"`
}

// ChatTurnRequest carries the client-side history and the newest user message.
type ChatTurnRequest struct {
	History []ChatMessage `json:"history" binding:"dive"`
	Message string        `json:"message"`
}

// ChatTurnResponse is the generated reply for one turn.
type ChatTurnResponse struct {
	Response string `json:"response"`
}
