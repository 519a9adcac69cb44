package store

import (
	"context"
	"testing"

	"github.com/teampath/learnhub-backend/internal/kv"
	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/types"
)

func branch(branchID, ownerID string, public *bool) types.LearningModule {
	return types.LearningModule{
		ID:             branchID + "-module",
		Title:          "Module",
		BranchID:       branchID,
		BranchOwnerID:  ownerID,
		SourceModuleID: "mod-001",
		IsBranched:     true,
		IsPublic:       public,
	}
}

func TestRegistryPutUpserts(t *testing.T) {
	br := NewBranchRegistry(kv.NewMemory(), logger.NewNop())
	ctx := context.Background()

	b := branch("branch-1", "emp-001", nil)
	if err := br.Put(ctx, b); err != nil {
		t.Fatal(err)
	}
	b.Title = "Renamed"
	if err := br.Put(ctx, b); err != nil {
		t.Fatal(err)
	}

	all := br.All(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one registry entry, got %d", len(all))
	}
	if all[0].Title != "Renamed" {
		t.Fatalf("expected upserted entry, got %+v", all[0])
	}
}

func TestForOwner(t *testing.T) {
	br := NewBranchRegistry(kv.NewMemory(), logger.NewNop())
	ctx := context.Background()

	_ = br.Put(ctx, branch("branch-1", "emp-001", nil))
	_ = br.Put(ctx, branch("branch-2", "emp-002", nil))

	owned := br.ForOwner(ctx, "emp-001")
	if len(owned) != 1 || owned[0].BranchID != "branch-1" {
		t.Fatalf("expected only emp-001's branch, got %+v", owned)
	}
}

func TestTeamVisibility(t *testing.T) {
	br := NewBranchRegistry(kv.NewMemory(), logger.NewNop())
	ctx := context.Background()

	private := false
	_ = br.Put(ctx, branch("branch-1", "emp-001", nil))      // default public
	_ = br.Put(ctx, branch("branch-2", "emp-002", &private)) // hidden
	_ = br.Put(ctx, branch("branch-3", "emp-003", nil))

	team := br.Team(ctx, "")
	if len(team) != 2 {
		t.Fatalf("expected two visible branches, got %d", len(team))
	}

	excluded := br.Team(ctx, "emp-001")
	if len(excluded) != 1 || excluded[0].BranchID != "branch-3" {
		t.Fatalf("expected owner exclusion, got %+v", excluded)
	}
}
