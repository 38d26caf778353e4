package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"greenlab-checklist-be/internal/entities"
	"greenlab-checklist-be/internal/httpresp"
	"greenlab-checklist-be/internal/models"
	"greenlab-checklist-be/internal/service"
)

const msgUserNotFound = "Usuario no encontrado"

type UserController struct {
	userService service.UserService
	log         *zap.Logger
}

// NewUserController creates a new user controller
func NewUserController(userService service.UserService, log *zap.Logger) *UserController {
	return &UserController{userService: userService, log: log}
}

// List handles GET /api/usuarios
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, uc.log, err, msgUserNotFound)
		return
	}

	if users == nil {
		users = []*entities.User{}
	}
	httpresp.OK(c, users)
}

// GetByID handles GET /api/usuarios/:id
func (uc *UserController) GetByID(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	user, err := uc.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, uc.log, err, msgUserNotFound)
		return
	}

	httpresp.OK(c, user)
}

// Create handles POST /api/usuarios
func (uc *UserController) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Error(c, http.StatusBadRequest, msgMalformedBody)
		return
	}

	user, err := uc.userService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, uc.log, err, msgUserNotFound)
		return
	}

	httpresp.Created(c, user)
}

// Update handles PUT and PATCH /api/usuarios/:id
func (uc *UserController) Update(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Error(c, http.StatusBadRequest, msgMalformedBody)
		return
	}

	user, err := uc.userService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, uc.log, err, msgUserNotFound)
		return
	}

	httpresp.OK(c, user)
}

// Delete handles DELETE /api/usuarios/:id
func (uc *UserController) Delete(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	if err := uc.userService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, uc.log, err, msgUserNotFound)
		return
	}

	httpresp.NoContent(c)
}

// userID parses the :id path parameter. A non-numeric id behaves like an
// unmatched route.
func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpresp.Error(c, http.StatusNotFound, msgRouteNotFound)
		return 0, false
	}
	return id, true
}
