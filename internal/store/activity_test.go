package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/teampath/learnhub-backend/internal/kv"
	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/types"
)

func TestLedgerAssignsIDAndTimestamp(t *testing.T) {
	ledger := NewActivityLedger(kv.NewMemory(), logger.NewNop(), 0)
	ctx := context.Background()

	logged, err := ledger.Log(ctx, types.ActivityItem{
		Type:     types.ActivityStar,
		UserID:   "emp-001",
		UserName: "Alex Rivera",
	})
	if err != nil {
		t.Fatal(err)
	}
	if logged.ID == "" || logged.Timestamp.IsZero() {
		t.Fatalf("expected id and timestamp assigned, got %+v", logged)
	}
}

func TestLedgerCapKeepsMostRecent(t *testing.T) {
	ledger := NewActivityLedger(kv.NewMemory(), logger.NewNop(), 100)
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		_, err := ledger.Log(ctx, types.ActivityItem{
			Type:     types.ActivityComment,
			UserID:   "emp-001",
			UserName: fmt.Sprintf("entry-%03d", i),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	recent := ledger.Recent(ctx, 1000)
	if len(recent) != 100 {
		t.Fatalf("expected cap of 100 entries, got %d", len(recent))
	}
	// Most recent first: entry-149 down to entry-050.
	for i, a := range recent {
		want := fmt.Sprintf("entry-%03d", 149-i)
		if a.UserName != want {
			t.Fatalf("entry %d: expected %s, got %s", i, want, a.UserName)
		}
	}
}

func TestRecentDefaultLimit(t *testing.T) {
	ledger := NewActivityLedger(kv.NewMemory(), logger.NewNop(), 100)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		_, _ = ledger.Log(ctx, types.ActivityItem{Type: types.ActivityStar, UserID: "emp-001", UserName: "x"})
	}
	if got := len(ledger.Recent(ctx, 0)); got != 20 {
		t.Fatalf("expected default limit of 20, got %d", got)
	}
	if got := len(ledger.Recent(ctx, 5)); got != 5 {
		t.Fatalf("expected 5 entries, got %d", got)
	}
}

func TestLogPullFallsBackToPlaceholderName(t *testing.T) {
	ledger := NewActivityLedger(kv.NewMemory(), logger.NewNop(), 100)
	ctx := context.Background()

	branch := types.LearningModule{
		ID:             "branch-x-module",
		Title:          "React Advanced Patterns",
		BranchID:       "branch-x",
		BranchName:     "sam-lee-react-advanced-patterns",
		SourceModuleID: "mod-001",
	}
	if err := ledger.LogPull(ctx, branch, "emp-002", ""); err != nil {
		t.Fatal(err)
	}

	recent := ledger.Recent(ctx, 1)
	if len(recent) != 1 {
		t.Fatal("expected one ledger entry")
	}
	got := recent[0]
	if got.UserName != "Unknown User" {
		t.Fatalf("expected placeholder name, got %q", got.UserName)
	}
	if got.Type != types.ActivityPull || got.TargetModuleID != "mod-001" || got.BranchID != "branch-x" {
		t.Fatalf("unexpected pull entry: %+v", got)
	}
}
