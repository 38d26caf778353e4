package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenlab-checklist-be/internal/entities"
	"greenlab-checklist-be/internal/httpresp"
	"greenlab-checklist-be/internal/repository"
)

type IncidentController struct {
	incidentRepo repository.IncidentRepository
	log          *zap.Logger
}

// NewIncidentController creates a new incident controller
func NewIncidentController(incidentRepo repository.IncidentRepository, log *zap.Logger) *IncidentController {
	return &IncidentController{incidentRepo: incidentRepo, log: log}
}

// List handles GET /api/incidencias
func (ic *IncidentController) List(c *gin.Context) {
	incidents, err := ic.incidentRepo.List(c.Request.Context())
	if err != nil {
		respondError(c, ic.log, err, msgRouteNotFound)
		return
	}

	if incidents == nil {
		incidents = []*entities.Incident{}
	}
	httpresp.OK(c, incidents)
}
