package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CrisOrc/prueba-tecnica-Konecta/middleware"
	"github.com/CrisOrc/prueba-tecnica-Konecta/services"
)

// RequestController exposes request ticket creation, listing and deletion.
type RequestController struct {
	requests *services.RequestService
	logger   *zap.Logger
}

func NewRequestController(requests *services.RequestService, logger *zap.Logger) *RequestController {
	return &RequestController{requests: requests, logger: logger}
}

func (ctl *RequestController) List(c *gin.Context) {
	page := services.Pagination{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}

	var filter services.RequestFilter
	if v, err := strconv.ParseUint(c.Query("employeeId"), 10, 32); err == nil {
		id := uint(v)
		filter.EmployeeID = &id
	}
	if v, err := strconv.ParseUint(c.Query("adminId"), 10, 32); err == nil {
		id := uint(v)
		filter.AdminID = &id
	}
	if start, err := time.Parse(dateLayout, c.Query("startDate")); err == nil {
		if end, err := time.Parse(dateLayout, c.Query("endDate")); err == nil {
			// The end date is inclusive, so extend it to the end of the day.
			end = end.Add(24*time.Hour - time.Second)
			filter.Start = &start
			filter.End = &end
		}
	}

	result, err := ctl.requests.List(c.Request.Context(), filter, page)
	if err != nil {
		ctl.logger.Error("failed to list requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving requests"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctl *RequestController) Create(c *gin.Context) {
	var body struct {
		Description string `json:"description" binding:"required"`
		Summary     string `json:"summary"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Description is required"})
		return
	}

	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "User not found"})
		return
	}

	request, err := ctl.requests.Create(c.Request.Context(), body.Description, body.Summary, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusForbidden, gin.H{"message": "User not found"})
		case errors.Is(err, services.ErrEmployeeRecordNotFound):
			c.JSON(http.StatusForbidden, gin.H{"message": "Employee record not found"})
		case errors.Is(err, services.ErrRoleForbidden):
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied, insufficient permissions"})
		default:
			ctl.logger.Error("failed to create request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating request"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Request created successfully", "request": request})
}

func (ctl *RequestController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := ctl.requests.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Request not found"})
			return
		}
		ctl.logger.Error("failed to delete request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request deleted successfully"})
}
