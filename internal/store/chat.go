package store

import (
	"context"
	"strings"
	"time"

	"github.com/teampath/learnhub-backend/internal/apperr"
	"github.com/teampath/learnhub-backend/internal/kv"
	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/types"
)

const chatRoomsKey = "moduleChatRooms"

// RoomID derives the chat room for a source module. It is a pure function
// of the source id: a branch owner and everyone who later pulls from that
// branch all land in the same thread.
func RoomID(sourceModuleID string) string {
	return "chat-" + sourceModuleID
}

// ChatIndex keys message lists by room id. Rooms are unbounded; unlike the
// activity ledger there is no cap.
type ChatIndex interface {
	Messages(ctx context.Context, roomID string) []types.ChatMessage
	Post(ctx context.Context, roomID string, msg types.ChatMessage) (types.ChatMessage, error)
}

type chatIndex struct {
	kv  kv.Store
	log *logger.Logger
}

func NewChatIndex(store kv.Store, baseLog *logger.Logger) ChatIndex {
	return &chatIndex{kv: store, log: baseLog.With("store", "ChatIndex")}
}

func (ci *chatIndex) rooms(ctx context.Context) map[string][]types.ChatMessage {
	rooms := map[string][]types.ChatMessage{}
	ok, err := kv.GetJSON(ctx, ci.kv, chatRoomsKey, &rooms)
	if err != nil {
		ci.log.Warn("Failed to load chat rooms, treating as empty", "error", err)
		return map[string][]types.ChatMessage{}
	}
	if !ok {
		return map[string][]types.ChatMessage{}
	}
	return rooms
}

func (ci *chatIndex) Messages(ctx context.Context, roomID string) []types.ChatMessage {
	return ci.rooms(ctx)[roomID]
}

// Post appends the message to the room, assigning an id and timestamp when
// the caller left them unset. Empty messages are rejected.
func (ci *chatIndex) Post(ctx context.Context, roomID string, msg types.ChatMessage) (types.ChatMessage, error) {
	if roomID == "" || strings.TrimSpace(msg.Message) == "" {
		return types.ChatMessage{}, apperr.ErrInvalidArgument
	}
	if msg.ID == "" {
		msg.ID = "msg-" + NewID()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	rooms := ci.rooms(ctx)
	rooms[roomID] = append(rooms[roomID], msg)
	if err := kv.PutJSON(ctx, ci.kv, chatRoomsKey, rooms); err != nil {
		return types.ChatMessage{}, err
	}
	return msg, nil
}
