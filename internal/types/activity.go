package types

import "time"

// ActivityType enumerates the collaboration events the ledger records.
type ActivityType string

const (
	ActivityBranch   ActivityType = "branch"
	ActivityPull     ActivityType = "pull"
	ActivityMerge    ActivityType = "merge"
	ActivityComment  ActivityType = "comment"
	ActivityStar     ActivityType = "star"
	ActivityComplete ActivityType = "complete"
)

// ActivityItem is one entry of the team activity ledger, most recent first.
// ID and Timestamp are assigned by the ledger when the entry is logged.
type ActivityItem struct {
	ID                string       `json:"id"`
	Type              ActivityType `json:"type"`
	UserID            string       `json:"userId"`
	UserName          string       `json:"userName"`
	UserAvatar        string       `json:"userAvatar,omitempty"`
	TargetModuleID    string       `json:"targetModuleId,omitempty"`
	TargetModuleTitle string       `json:"targetModuleTitle,omitempty"`
	BranchID          string       `json:"branchId,omitempty"`
	BranchName        string       `json:"branchName,omitempty"`
	Timestamp         time.Time    `json:"timestamp"`
}
