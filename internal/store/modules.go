package store

import (
	"context"

	"github.com/teampath/learnhub-backend/internal/kv"
	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/types"
)

const userModulesKeyPrefix = "userModules-"

// ModuleStore holds each user's personal learning path: owned, added,
// branched and pulled modules, most recently touched first.
//
// Load never fails: a missing user, an uninitialized collection or a corrupt
// record all read as absent. Writes return errors so callers can decide how
// loudly to degrade.
type ModuleStore interface {
	Load(ctx context.Context, userID string) ([]types.LearningModule, bool)
	Save(ctx context.Context, userID string, modules []types.LearningModule) error
	Add(ctx context.Context, userID string, module types.LearningModule) error
	Upsert(ctx context.Context, userID string, module types.LearningModule) error
	UpdateProgress(ctx context.Context, userID, moduleID string, progress int, fallback *types.LearningModule) error
	Remove(ctx context.Context, userID, moduleID string) error
	ResetCompleted(ctx context.Context, userID string, fallback int) error
}

type moduleStore struct {
	kv  kv.Store
	log *logger.Logger
}

func NewModuleStore(store kv.Store, baseLog *logger.Logger) ModuleStore {
	return &moduleStore{kv: store, log: baseLog.With("store", "ModuleStore")}
}

func userModulesKey(userID string) string {
	return userModulesKeyPrefix + userID
}

func (ms *moduleStore) Load(ctx context.Context, userID string) ([]types.LearningModule, bool) {
	if userID == "" {
		return nil, false
	}
	var modules []types.LearningModule
	ok, err := kv.GetJSON(ctx, ms.kv, userModulesKey(userID), &modules)
	if err != nil {
		ms.log.Warn("Failed to load user modules, treating as absent", "userId", userID, "error", err)
		return nil, false
	}
	if !ok || modules == nil {
		return nil, false
	}
	return modules, true
}

func (ms *moduleStore) Save(ctx context.Context, userID string, modules []types.LearningModule) error {
	if userID == "" {
		return nil
	}
	if modules == nil {
		modules = []types.LearningModule{}
	}
	return kv.PutJSON(ctx, ms.kv, userModulesKey(userID), modules)
}

// Add prepends the module unless one with the same id already exists. The
// unchanged collection is re-persisted on the duplicate path, so the call is
// idempotent either way.
func (ms *moduleStore) Add(ctx context.Context, userID string, module types.LearningModule) error {
	if userID == "" {
		return nil
	}
	existing, _ := ms.Load(ctx, userID)
	for _, m := range existing {
		if m.ID == module.ID {
			return ms.Save(ctx, userID, existing)
		}
	}
	return ms.Save(ctx, userID, append([]types.LearningModule{module}, existing...))
}

// Upsert replaces the entry with a matching id, or prepends when absent.
func (ms *moduleStore) Upsert(ctx context.Context, userID string, module types.LearningModule) error {
	if userID == "" {
		return nil
	}
	existing, _ := ms.Load(ctx, userID)
	for i, m := range existing {
		if m.ID == module.ID {
			existing[i] = module
			return ms.Save(ctx, userID, existing)
		}
	}
	return ms.Save(ctx, userID, append([]types.LearningModule{module}, existing...))
}

// UpdateProgress sets progress on the matching entry. When the module is not
// in the user's path yet and a fallback is supplied, a new entry seeded from
// the fallback is prepended; with no fallback the call is a no-op.
func (ms *moduleStore) UpdateProgress(ctx context.Context, userID, moduleID string, progress int, fallback *types.LearningModule) error {
	if userID == "" {
		return nil
	}
	existing, _ := ms.Load(ctx, userID)
	for i, m := range existing {
		if m.ID == moduleID {
			existing[i].Progress = progress
			return ms.Save(ctx, userID, existing)
		}
	}
	if fallback == nil {
		return nil
	}
	seeded := *fallback
	seeded.Progress = progress
	return ms.Save(ctx, userID, append([]types.LearningModule{seeded}, existing...))
}

func (ms *moduleStore) Remove(ctx context.Context, userID, moduleID string) error {
	if userID == "" {
		return nil
	}
	existing, _ := ms.Load(ctx, userID)
	filtered := existing[:0]
	for _, m := range existing {
		if m.ID != moduleID {
			filtered = append(filtered, m)
		}
	}
	return ms.Save(ctx, userID, filtered)
}

// ResetCompleted rewrites every fully completed entry back to the fallback
// progress. Used when a learning path is re-assigned for a refresher.
func (ms *moduleStore) ResetCompleted(ctx context.Context, userID string, fallback int) error {
	if userID == "" {
		return nil
	}
	existing, ok := ms.Load(ctx, userID)
	if !ok || len(existing) == 0 {
		return nil
	}
	for i, m := range existing {
		if m.Progress == 100 {
			existing[i].Progress = fallback
		}
	}
	return ms.Save(ctx, userID, existing)
}
