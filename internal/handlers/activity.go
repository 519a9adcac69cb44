package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/teampath/learnhub-backend/internal/services"
	"github.com/teampath/learnhub-backend/internal/types"
)

type ActivityHandler struct {
	activityService services.ActivityService
}

func NewActivityHandler(activityService services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (ah *ActivityHandler) Log(c *gin.Context) {
	var entry types.ActivityItem
	if err := c.ShouldBindJSON(&entry); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	logged, err := ah.activityService.Log(c.Request.Context(), entry)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	RespondCreated(c, gin.H{"activity": logged})
}

func (ah *ActivityHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	activities := ah.activityService.Recent(c.Request.Context(), limit)
	if activities == nil {
		activities = []types.ActivityItem{}
	}
	RespondOK(c, gin.H{"activities": activities})
}
