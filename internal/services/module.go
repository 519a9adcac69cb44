package services

import (
	"context"

	"github.com/teampath/learnhub-backend/internal/apperr"
	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/store"
	"github.com/teampath/learnhub-backend/internal/types"
)

// ModuleService fronts the per-user module store. Write failures are logged
// and swallowed here: the client's in-memory view stays the source of truth
// for the session, and a dropped write must never take the UI down.
type ModuleService interface {
	LoadModules(ctx context.Context, userID string) ([]types.LearningModule, bool)
	SaveModules(ctx context.Context, userID string, modules []types.LearningModule) error
	AddModule(ctx context.Context, userID string, module types.LearningModule) error
	RemoveModule(ctx context.Context, userID, moduleID string) error
	UpdateProgress(ctx context.Context, userID, moduleID string, progress int, fallback *types.LearningModule) error
	ResetCompleted(ctx context.Context, userID string, fallback int) error
}

type moduleService struct {
	modules store.ModuleStore
	log     *logger.Logger
}

func NewModuleService(modules store.ModuleStore, baseLog *logger.Logger) ModuleService {
	return &moduleService{modules: modules, log: baseLog.With("service", "ModuleService")}
}

func (ms *moduleService) LoadModules(ctx context.Context, userID string) ([]types.LearningModule, bool) {
	return ms.modules.Load(ctx, userID)
}

func (ms *moduleService) SaveModules(ctx context.Context, userID string, modules []types.LearningModule) error {
	if userID == "" {
		return apperr.ErrInvalidArgument
	}
	if err := ms.modules.Save(ctx, userID, modules); err != nil {
		ms.log.Warn("Failed to save user modules", "userId", userID, "error", err)
	}
	return nil
}

func (ms *moduleService) AddModule(ctx context.Context, userID string, module types.LearningModule) error {
	if userID == "" || module.ID == "" {
		return apperr.ErrInvalidArgument
	}
	if err := ms.modules.Add(ctx, userID, module); err != nil {
		ms.log.Warn("Failed to add module", "userId", userID, "moduleId", module.ID, "error", err)
	}
	return nil
}

func (ms *moduleService) RemoveModule(ctx context.Context, userID, moduleID string) error {
	if userID == "" || moduleID == "" {
		return apperr.ErrInvalidArgument
	}
	if err := ms.modules.Remove(ctx, userID, moduleID); err != nil {
		ms.log.Warn("Failed to remove module", "userId", userID, "moduleId", moduleID, "error", err)
	}
	return nil
}

func (ms *moduleService) UpdateProgress(ctx context.Context, userID, moduleID string, progress int, fallback *types.LearningModule) error {
	if userID == "" || moduleID == "" {
		return apperr.ErrInvalidArgument
	}
	if progress < 0 || progress > 100 {
		return apperr.ErrInvalidArgument
	}
	if err := ms.modules.UpdateProgress(ctx, userID, moduleID, progress, fallback); err != nil {
		ms.log.Warn("Failed to update progress", "userId", userID, "moduleId", moduleID, "error", err)
	}
	return nil
}

func (ms *moduleService) ResetCompleted(ctx context.Context, userID string, fallback int) error {
	if userID == "" {
		return apperr.ErrInvalidArgument
	}
	if fallback <= 0 || fallback > 100 {
		fallback = 80
	}
	if err := ms.modules.ResetCompleted(ctx, userID, fallback); err != nil {
		ms.log.Warn("Failed to reset completed modules", "userId", userID, "error", err)
	}
	return nil
}
