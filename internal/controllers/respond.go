package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenlab-checklist-be/internal/apperrors"
	"greenlab-checklist-be/internal/httpresp"
)

// Client-facing messages shared across controllers. Raw error detail stays
// in the server log.
const (
	msgMalformedBody    = "Solicitud incorrecta"
	msgRouteNotFound    = "Recurso no encontrado"
	msgMethodNotAllowed = "Método no permitido"
	msgDuplicateEmail   = "El email ya existe"
	msgUserReferenced   = "El usuario está referenciado por otros registros"
	msgConnection       = "Error de conexión a la base de datos"
	msgInternal         = "Error interno del servidor"
)

// respondError maps a service or repository error onto the HTTP contract.
// notFound is the resource-specific 404 message.
func respondError(c *gin.Context, log *zap.Logger, err error, notFound string) {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		httpresp.Error(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, apperrors.ErrNotFound):
		httpresp.Error(c, http.StatusNotFound, notFound)
	case errors.Is(err, apperrors.ErrDuplicate):
		httpresp.Error(c, http.StatusConflict, msgDuplicateEmail)
	case errors.Is(err, apperrors.ErrReferenced):
		httpresp.Error(c, http.StatusConflict, msgUserReferenced)
	case errors.Is(err, apperrors.ErrConnection):
		log.Error("database connection failed", zap.Error(err), zap.String("path", c.FullPath()))
		httpresp.Error(c, http.StatusInternalServerError, msgConnection)
	default:
		log.Error("unexpected error", zap.Error(err), zap.String("path", c.FullPath()))
		httpresp.Error(c, http.StatusInternalServerError, msgInternal)
	}
}

// NoRoute handles requests that match no registered route.
func NoRoute(c *gin.Context) {
	httpresp.Error(c, http.StatusNotFound, msgRouteNotFound)
}

// NoMethod handles requests using an unsupported method on a known route.
func NoMethod(c *gin.Context) {
	httpresp.Error(c, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
