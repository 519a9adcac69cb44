package services

import (
	"context"

	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/store"
	"github.com/teampath/learnhub-backend/internal/types"
)

// ChatService exposes the module discussion threads. Rooms are keyed by
// source module identity (store.RoomID), so a branch and all of its pulled
// descendants share one thread.
type ChatService interface {
	Messages(ctx context.Context, roomID string) []types.ChatMessage
	Post(ctx context.Context, roomID string, msg types.ChatMessage) (types.ChatMessage, error)
	RoomFor(module types.LearningModule) string
}

type chatService struct {
	chat store.ChatIndex
	log  *logger.Logger
}

func NewChatService(chat store.ChatIndex, baseLog *logger.Logger) ChatService {
	return &chatService{chat: chat, log: baseLog.With("service", "ChatService")}
}

func (cs *chatService) Messages(ctx context.Context, roomID string) []types.ChatMessage {
	return cs.chat.Messages(ctx, roomID)
}

func (cs *chatService) Post(ctx context.Context, roomID string, msg types.ChatMessage) (types.ChatMessage, error) {
	posted, err := cs.chat.Post(ctx, roomID, msg)
	if err != nil {
		cs.log.Warn("Failed to post chat message", "roomId", roomID, "error", err)
		return types.ChatMessage{}, err
	}
	return posted, nil
}

// RoomFor resolves a module's chat room: the stored id when present, else
// derived from the module's source identity.
func (cs *chatService) RoomFor(module types.LearningModule) string {
	if module.ChatRoomID != "" {
		return module.ChatRoomID
	}
	return store.RoomID(module.Source())
}
