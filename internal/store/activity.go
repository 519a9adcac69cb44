package store

import (
	"context"
	"time"

	"github.com/teampath/learnhub-backend/internal/kv"
	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/types"
)

const (
	activitiesKey = "teamActivities"

	// DefaultActivityCap bounds the ledger; entries past the cap are gone
	// for good.
	DefaultActivityCap = 100

	defaultRecentLimit = 20
)

// ActivityLedger is the append-only, capped, most-recent-first log of
// collaboration events shared by the whole team.
type ActivityLedger interface {
	Log(ctx context.Context, entry types.ActivityItem) (types.ActivityItem, error)
	Recent(ctx context.Context, limit int) []types.ActivityItem
	LogBranch(ctx context.Context, branch types.LearningModule, userID, userName string) error
	LogPull(ctx context.Context, branch types.LearningModule, userID, userName string) error
}

type activityLedger struct {
	kv  kv.Store
	log *logger.Logger
	cap int
}

func NewActivityLedger(store kv.Store, baseLog *logger.Logger, cap int) ActivityLedger {
	if cap <= 0 {
		cap = DefaultActivityCap
	}
	return &activityLedger{
		kv:  store,
		log: baseLog.With("store", "ActivityLedger"),
		cap: cap,
	}
}

func (al *activityLedger) all(ctx context.Context) []types.ActivityItem {
	var activities []types.ActivityItem
	ok, err := kv.GetJSON(ctx, al.kv, activitiesKey, &activities)
	if err != nil {
		al.log.Warn("Failed to load activity ledger, treating as empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return activities
}

// Log assigns an id and the current instant, prepends the entry and drops
// everything past the cap.
func (al *activityLedger) Log(ctx context.Context, entry types.ActivityItem) (types.ActivityItem, error) {
	entry.ID = "activity-" + NewID()
	entry.Timestamp = time.Now().UTC()

	activities := append([]types.ActivityItem{entry}, al.all(ctx)...)
	if len(activities) > al.cap {
		activities = activities[:al.cap]
	}
	if err := kv.PutJSON(ctx, al.kv, activitiesKey, activities); err != nil {
		return types.ActivityItem{}, err
	}
	return entry, nil
}

func (al *activityLedger) Recent(ctx context.Context, limit int) []types.ActivityItem {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	activities := al.all(ctx)
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities
}

// LogBranch records a branch-created event with the standard target fields.
func (al *activityLedger) LogBranch(ctx context.Context, branch types.LearningModule, userID, userName string) error {
	_, err := al.Log(ctx, types.ActivityItem{
		Type:              types.ActivityBranch,
		UserID:            userID,
		UserName:          userName,
		TargetModuleID:    branch.Source(),
		TargetModuleTitle: branch.Title,
		BranchID:          branch.BranchID,
		BranchName:        branch.BranchName,
	})
	return err
}

// LogPull records a pull event. No user lookup happens here; the caller
// resolves the display name, and an empty name falls back to a placeholder.
func (al *activityLedger) LogPull(ctx context.Context, branch types.LearningModule, userID, userName string) error {
	if userName == "" {
		userName = "Unknown User"
	}
	_, err := al.Log(ctx, types.ActivityItem{
		Type:              types.ActivityPull,
		UserID:            userID,
		UserName:          userName,
		TargetModuleID:    branch.Source(),
		TargetModuleTitle: branch.Title,
		BranchID:          branch.BranchID,
		BranchName:        branch.BranchName,
	})
	return err
}
