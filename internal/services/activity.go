package services

import (
	"context"

	"github.com/teampath/learnhub-backend/internal/apperr"
	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/store"
	"github.com/teampath/learnhub-backend/internal/types"
)

// ActivityService is the entry point for UI-originated ledger events
// (comment, star, complete). Branch and pull events are logged by the
// collab service itself.
type ActivityService interface {
	Log(ctx context.Context, entry types.ActivityItem) (types.ActivityItem, error)
	Recent(ctx context.Context, limit int) []types.ActivityItem
}

type activityService struct {
	ledger store.ActivityLedger
	log    *logger.Logger
}

func NewActivityService(ledger store.ActivityLedger, baseLog *logger.Logger) ActivityService {
	return &activityService{ledger: ledger, log: baseLog.With("service", "ActivityService")}
}

func (as *activityService) Log(ctx context.Context, entry types.ActivityItem) (types.ActivityItem, error) {
	if entry.Type == "" || entry.UserID == "" {
		return types.ActivityItem{}, apperr.ErrInvalidArgument
	}
	logged, err := as.ledger.Log(ctx, entry)
	if err != nil {
		as.log.Warn("Failed to log activity", "type", entry.Type, "userId", entry.UserID, "error", err)
		return types.ActivityItem{}, err
	}
	return logged, nil
}

func (as *activityService) Recent(ctx context.Context, limit int) []types.ActivityItem {
	return as.ledger.Recent(ctx, limit)
}
