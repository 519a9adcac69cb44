package types

import "time"

// ChatMessage is a single entry in a module chat room. Messages are
// immutable once posted; there is no edit or delete.
type ChatMessage struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}
