package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CrisOrc/prueba-tecnica-Konecta/services"
)

// UserController lists registered users. Password hashes are never
// serialized by the model.
type UserController struct {
	users  services.UserRepository
	logger *zap.Logger
}

func NewUserController(users services.UserRepository, logger *zap.Logger) *UserController {
	return &UserController{users: users, logger: logger}
}

func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.users.List(c.Request.Context())
	if err != nil {
		ctl.logger.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving users"})
		return
	}
	c.JSON(http.StatusOK, users)
}
