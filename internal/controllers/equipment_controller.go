package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenlab-checklist-be/internal/entities"
	"greenlab-checklist-be/internal/httpresp"
	"greenlab-checklist-be/internal/repository"
)

type EquipmentController struct {
	equipmentRepo repository.EquipmentRepository
	log           *zap.Logger
}

// NewEquipmentController creates a new equipment controller
func NewEquipmentController(equipmentRepo repository.EquipmentRepository, log *zap.Logger) *EquipmentController {
	return &EquipmentController{equipmentRepo: equipmentRepo, log: log}
}

// List handles GET /api/equipos
func (ec *EquipmentController) List(c *gin.Context) {
	equipos, err := ec.equipmentRepo.List(c.Request.Context())
	if err != nil {
		respondError(c, ec.log, err, msgRouteNotFound)
		return
	}

	if equipos == nil {
		equipos = []*entities.Equipment{}
	}
	httpresp.OK(c, equipos)
}
