package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceName = "gin"

// CheckFunc probes database connectivity. It never fails; any problem comes
// back as (false, descriptive message).
type CheckFunc func(ctx context.Context) (bool, string)

type HealthController struct {
	check CheckFunc
}

// NewHealthController creates a new health controller
func NewHealthController(check CheckFunc) *HealthController {
	return &HealthController{check: check}
}

// Health handles GET /health with the backend and database status.
func (hc *HealthController) Health(c *gin.Context) {
	dbOK, dbMessage := hc.check(c.Request.Context())

	status := http.StatusOK
	dbState := "connected"
	if !dbOK {
		status = http.StatusInternalServerError
		dbState = "disconnected"
	}

	c.JSON(status, gin.H{
		"ok":       dbOK,
		"service":  serviceName,
		"database": dbState,
		"message":  dbMessage,
	})
}

// Home handles GET / and renders the status page with the same probe result.
func (hc *HealthController) Home(c *gin.Context) {
	dbOK, dbMessage := hc.check(c.Request.Context())

	c.HTML(http.StatusOK, "index.html", gin.H{
		"DBOk":      dbOK,
		"DBMessage": dbMessage,
	})
}
