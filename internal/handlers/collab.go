package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teampath/learnhub-backend/internal/apperr"
	"github.com/teampath/learnhub-backend/internal/services"
	"github.com/teampath/learnhub-backend/internal/types"
)

type CollabHandler struct {
	collabService services.CollabService
}

func NewCollabHandler(collabService services.CollabService) *CollabHandler {
	return &CollabHandler{collabService: collabService}
}

type createBranchRequest struct {
	SourceModule types.LearningModule `json:"sourceModule"`
	UserID       string               `json:"userId"`
	UserName     string               `json:"userName"`
}

func (ch *CollabHandler) CreateBranch(c *gin.Context) {
	var req createBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	branch, err := ch.collabService.CreateBranch(c.Request.Context(), req.SourceModule, req.UserID, req.UserName)
	if errors.Is(err, apperr.ErrDuplicateBranch) {
		RespondError(c, http.StatusConflict, "duplicate_branch", err)
		return
	}
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	RespondCreated(c, gin.H{"branch": branch})
}

type pullRequest struct {
	BranchModule types.LearningModule `json:"branchModule"`
	UserID       string               `json:"userId"`
	UserName     string               `json:"userName"`
}

func (ch *CollabHandler) Pull(c *gin.Context) {
	var req pullRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	pulled, err := ch.collabService.PullFromBranch(c.Request.Context(), req.BranchModule, req.UserID, req.UserName)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	RespondOK(c, gin.H{"module": pulled})
}

func (ch *CollabHandler) UserBranches(c *gin.Context) {
	userID := c.Param("userId")
	branches := ch.collabService.UserBranches(c.Request.Context(), userID)
	if branches == nil {
		branches = []types.LearningModule{}
	}
	RespondOK(c, gin.H{"branches": branches})
}

func (ch *CollabHandler) TeamBranches(c *gin.Context) {
	exclude := c.Query("exclude")
	branches := ch.collabService.TeamBranches(c.Request.Context(), exclude)
	if branches == nil {
		branches = []types.LearningModule{}
	}
	RespondOK(c, gin.H{"branches": branches})
}
