package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenlab-checklist-be/internal/entities"
	"greenlab-checklist-be/internal/httpresp"
	"greenlab-checklist-be/internal/repository"
)

type ChecklistController struct {
	checklistRepo repository.ChecklistRepository
	log           *zap.Logger
}

// NewChecklistController creates a new checklist controller
func NewChecklistController(checklistRepo repository.ChecklistRepository, log *zap.Logger) *ChecklistController {
	return &ChecklistController{checklistRepo: checklistRepo, log: log}
}

// ListTemplates handles GET /api/checklist/plantillas
func (cc *ChecklistController) ListTemplates(c *gin.Context) {
	templates, err := cc.checklistRepo.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, cc.log, err, msgRouteNotFound)
		return
	}

	if templates == nil {
		templates = []*entities.ChecklistTemplate{}
	}
	httpresp.OK(c, templates)
}

// ListEntries handles GET /api/checklist/registros
func (cc *ChecklistController) ListEntries(c *gin.Context) {
	entries, err := cc.checklistRepo.ListEntries(c.Request.Context())
	if err != nil {
		respondError(c, cc.log, err, msgRouteNotFound)
		return
	}

	if entries == nil {
		entries = []*entities.ChecklistEntry{}
	}
	httpresp.OK(c, entries)
}
