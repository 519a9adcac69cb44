package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teampath/learnhub-backend/internal/services"
	"github.com/teampath/learnhub-backend/internal/types"
)

type ModulesHandler struct {
	moduleService services.ModuleService
}

func NewModulesHandler(moduleService services.ModuleService) *ModulesHandler {
	return &ModulesHandler{moduleService: moduleService}
}

// Get returns the user's learning path. An uninitialized path is not an
// error; "initialized" tells the client whether to seed defaults.
func (mh *ModulesHandler) Get(c *gin.Context) {
	userID := c.Param("userId")
	modules, ok := mh.moduleService.LoadModules(c.Request.Context(), userID)
	if modules == nil {
		modules = []types.LearningModule{}
	}
	RespondOK(c, gin.H{"modules": modules, "initialized": ok})
}

type saveModulesRequest struct {
	Modules []types.LearningModule `json:"modules"`
}

func (mh *ModulesHandler) Save(c *gin.Context) {
	userID := c.Param("userId")
	var req saveModulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := mh.moduleService.SaveModules(c.Request.Context(), userID, req.Modules); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	RespondOK(c, gin.H{"saved": true})
}

func (mh *ModulesHandler) Add(c *gin.Context) {
	userID := c.Param("userId")
	var module types.LearningModule
	if err := c.ShouldBindJSON(&module); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := mh.moduleService.AddModule(c.Request.Context(), userID, module); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	RespondOK(c, gin.H{"added": true})
}

func (mh *ModulesHandler) Remove(c *gin.Context) {
	userID := c.Param("userId")
	moduleID := c.Param("moduleId")
	if err := mh.moduleService.RemoveModule(c.Request.Context(), userID, moduleID); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	RespondOK(c, gin.H{"removed": true})
}

type updateProgressRequest struct {
	Progress int                   `json:"progress"`
	Fallback *types.LearningModule `json:"fallback,omitempty"`
}

func (mh *ModulesHandler) UpdateProgress(c *gin.Context) {
	userID := c.Param("userId")
	moduleID := c.Param("moduleId")
	var req updateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := mh.moduleService.UpdateProgress(c.Request.Context(), userID, moduleID, req.Progress, req.Fallback); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

type resetCompletedRequest struct {
	Fallback int `json:"fallback"`
}

func (mh *ModulesHandler) ResetCompleted(c *gin.Context) {
	userID := c.Param("userId")
	var req resetCompletedRequest
	// Body is optional; a missing or empty body means the default fallback.
	_ = c.ShouldBindJSON(&req)
	if err := mh.moduleService.ResetCompleted(c.Request.Context(), userID, req.Fallback); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	RespondOK(c, gin.H{"reset": true})
}
