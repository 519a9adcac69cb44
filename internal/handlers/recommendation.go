package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teampath/learnhub-backend/internal/services"
	"github.com/teampath/learnhub-backend/internal/types"
)

type RecommendationHandler struct{}

func NewRecommendationHandler() *RecommendationHandler {
	return &RecommendationHandler{}
}

type recommendRequest struct {
	User    types.User             `json:"user"`
	Modules []types.LearningModule `json:"modules"`
}

// Recommend buckets the posted module snapshot for the posted user. The
// engine is a pure function, so the handler owns no state.
func (rh *RecommendationHandler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	RespondOK(c, services.Recommend(req.User, req.Modules))
}
