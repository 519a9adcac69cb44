package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/teampath/learnhub-backend/internal/data"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (ch *CatalogHandler) List(c *gin.Context) {
	RespondOK(c, gin.H{"modules": data.Catalog()})
}
