package store

import (
	"context"

	"github.com/teampath/learnhub-backend/internal/kv"
	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/types"
)

// branchesKey is a single shared record: every branch anyone has ever
// created, independent of the per-user module stores.
const branchesKey = "userBranches"

// BranchRegistry is the global index of branches. Branches are never
// deleted; Put upserts by branch id.
type BranchRegistry interface {
	All(ctx context.Context) []types.LearningModule
	Put(ctx context.Context, branch types.LearningModule) error
	ForOwner(ctx context.Context, userID string) []types.LearningModule
	Team(ctx context.Context, excludeUserID string) []types.LearningModule
}

type branchRegistry struct {
	kv  kv.Store
	log *logger.Logger
}

func NewBranchRegistry(store kv.Store, baseLog *logger.Logger) BranchRegistry {
	return &branchRegistry{kv: store, log: baseLog.With("store", "BranchRegistry")}
}

func (br *branchRegistry) All(ctx context.Context) []types.LearningModule {
	var branches []types.LearningModule
	ok, err := kv.GetJSON(ctx, br.kv, branchesKey, &branches)
	if err != nil {
		br.log.Warn("Failed to load branch registry, treating as empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return branches
}

func (br *branchRegistry) Put(ctx context.Context, branch types.LearningModule) error {
	existing := br.All(ctx)
	for i, b := range existing {
		if b.BranchID == branch.BranchID {
			existing[i] = branch
			return kv.PutJSON(ctx, br.kv, branchesKey, existing)
		}
	}
	return kv.PutJSON(ctx, br.kv, branchesKey, append(existing, branch))
}

func (br *branchRegistry) ForOwner(ctx context.Context, userID string) []types.LearningModule {
	var owned []types.LearningModule
	for _, b := range br.All(ctx) {
		if b.BranchOwnerID == userID {
			owned = append(owned, b)
		}
	}
	return owned
}

// Team returns every visible branch, optionally excluding one owner.
// Visibility defaults to public; entries without a branch id are skipped in
// case older records leaked into the registry.
func (br *branchRegistry) Team(ctx context.Context, excludeUserID string) []types.LearningModule {
	var visible []types.LearningModule
	for _, b := range br.All(ctx) {
		if !b.Public() || b.BranchID == "" {
			continue
		}
		if excludeUserID != "" && b.BranchOwnerID == excludeUserID {
			continue
		}
		visible = append(visible, b)
	}
	return visible
}
