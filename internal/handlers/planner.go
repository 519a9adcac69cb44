package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teampath/learnhub-backend/internal/data"
	"github.com/teampath/learnhub-backend/internal/services"
	"github.com/teampath/learnhub-backend/internal/types"
)

type PlannerHandler struct{}

func NewPlannerHandler() *PlannerHandler {
	return &PlannerHandler{}
}

type matchGoalRequest struct {
	Goal           string                 `json:"goal"`
	PreferredTypes []types.ModuleType     `json:"preferredTypes"`
	Difficulty     types.Difficulty       `json:"difficulty"`
	Catalog        []types.LearningModule `json:"catalog,omitempty"`
}

// Match ranks the catalog against a free-text goal. Clients may supply their
// own candidate list; otherwise the seed catalog is used.
func (ph *PlannerHandler) Match(c *gin.Context) {
	var req matchGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	catalog := req.Catalog
	if catalog == nil {
		catalog = data.Catalog()
	}
	matches := services.MatchGoal(req.Goal, req.PreferredTypes, req.Difficulty, catalog)
	if matches == nil {
		matches = []services.ModuleMatch{}
	}
	RespondOK(c, gin.H{"matches": matches})
}
