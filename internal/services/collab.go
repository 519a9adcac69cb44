package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/teampath/learnhub-backend/internal/apperr"
	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/store"
	"github.com/teampath/learnhub-backend/internal/types"
)

// CollabService is the branch/pull engine. It is the only component that
// touches more than one store in a single logical operation: a branch lands
// in the creator's module store, the global registry and the activity ledger
// as three separate writes, with no cross-store transaction. Readers must
// tolerate a partially applied branch after a crash.
type CollabService interface {
	CreateBranch(ctx context.Context, source types.LearningModule, userID, userName string) (*types.LearningModule, error)
	PullFromBranch(ctx context.Context, branch types.LearningModule, userID, userName string) (*types.LearningModule, error)
	UserBranches(ctx context.Context, userID string) []types.LearningModule
	TeamBranches(ctx context.Context, excludeUserID string) []types.LearningModule
}

type collabService struct {
	modules  store.ModuleStore
	branches store.BranchRegistry
	ledger   store.ActivityLedger
	log      *logger.Logger
}

func NewCollabService(modules store.ModuleStore, branches store.BranchRegistry, ledger store.ActivityLedger, baseLog *logger.Logger) CollabService {
	return &collabService{
		modules:  modules,
		branches: branches,
		ledger:   ledger,
		log:      baseLog.With("service", "CollabService"),
	}
}

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonAlnumRuns   = regexp.MustCompile(`[^a-z0-9]+`)
)

// BranchName builds a human-readable branch identifier from the owner's name
// and the module title: "{user-slug}-{title-slug}", with "-v{n+1}" appended
// when n existing names already start with the base slug.
func BranchName(userName, moduleTitle string, existingNames []string) string {
	userSlug := whitespaceRuns.ReplaceAllString(strings.ToLower(userName), "-")
	titleSlug := nonAlnumRuns.ReplaceAllString(strings.ToLower(moduleTitle), "-")
	base := strings.Trim(userSlug+"-"+titleSlug, "-")

	count := 0
	for _, name := range existingNames {
		if strings.HasPrefix(name, base) {
			count++
		}
	}
	if count == 0 {
		return base
	}
	return fmt.Sprintf("%s-v%d", base, count+1)
}

// CreateBranch clones the source module into a fresh branch owned by the
// user. A user gets at most one branch per source module; a second attempt
// fails with ErrDuplicateBranch.
func (cs *collabService) CreateBranch(ctx context.Context, source types.LearningModule, userID, userName string) (*types.LearningModule, error) {
	if userID == "" {
		return nil, apperr.ErrInvalidArgument
	}

	for _, b := range cs.branches.ForOwner(ctx, userID) {
		if b.SourceModuleID == source.ID || b.ParentModule == source.ID {
			cs.log.Debug("User already owns a branch of this module", "userId", userID, "sourceModuleId", source.ID)
			return nil, apperr.ErrDuplicateBranch
		}
	}

	var existingNames []string
	for _, b := range cs.branches.All(ctx) {
		if b.BranchName != "" {
			existingNames = append(existingNames, b.BranchName)
		}
	}

	branchID := "branch-" + store.NewID()
	public := true

	branch := source
	branch.ID = branchID + "-module"
	branch.Tags = append([]string(nil), source.Tags...)
	branch.BranchID = branchID
	branch.BranchOwnerID = userID
	branch.BranchName = BranchName(userName, source.Title, existingNames)
	branch.SourceModuleID = source.ID
	branch.IsBranched = true
	branch.ParentModule = source.ID
	branch.IsPublic = &public
	branch.Progress = 0
	branch.PulledFrom = ""
	branch.ChatRoomID = store.RoomID(source.ID)

	if err := cs.modules.Add(ctx, userID, branch); err != nil {
		cs.log.Warn("Failed to persist branch into user path", "userId", userID, "branchId", branchID, "error", err)
	}
	if err := cs.branches.Put(ctx, branch); err != nil {
		cs.log.Warn("Failed to persist branch into registry", "branchId", branchID, "error", err)
	}
	if err := cs.ledger.LogBranch(ctx, branch, userID, userName); err != nil {
		cs.log.Warn("Failed to log branch activity", "branchId", branchID, "error", err)
	}

	return &branch, nil
}

// PullFromBranch copies someone's branch into the puller's own path as an
// independent, non-branch record. The source branch is never touched; the
// shared chat room id is carried over so both sides keep one thread.
func (cs *collabService) PullFromBranch(ctx context.Context, branch types.LearningModule, userID, userName string) (*types.LearningModule, error) {
	if userID == "" {
		return nil, apperr.ErrInvalidArgument
	}

	roomID := branch.ChatRoomID
	if roomID == "" {
		roomID = store.RoomID(branch.Source())
	}

	pulled := branch
	pulled.ID = "pulled-" + uuid.NewString()
	pulled.Tags = append([]string(nil), branch.Tags...)
	pulled.BranchID = ""
	pulled.BranchOwnerID = ""
	pulled.BranchName = ""
	pulled.PulledFrom = branch.BranchID
	pulled.Progress = 0
	pulled.ChatRoomID = roomID

	if err := cs.modules.Add(ctx, userID, pulled); err != nil {
		cs.log.Warn("Failed to persist pulled module", "userId", userID, "error", err)
	}
	if err := cs.ledger.LogPull(ctx, branch, userID, userName); err != nil {
		cs.log.Warn("Failed to log pull activity", "userId", userID, "error", err)
	}

	return &pulled, nil
}

func (cs *collabService) UserBranches(ctx context.Context, userID string) []types.LearningModule {
	return cs.branches.ForOwner(ctx, userID)
}

func (cs *collabService) TeamBranches(ctx context.Context, excludeUserID string) []types.LearningModule {
	return cs.branches.Team(ctx, excludeUserID)
}
