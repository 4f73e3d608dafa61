package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CrisOrc/prueba-tecnica-Konecta/models"
	"github.com/CrisOrc/prueba-tecnica-Konecta/services"
)

const dateLayout = "2006-01-02"

// EmployeeController exposes employee CRUD and listing.
type EmployeeController struct {
	employees *services.EmployeeService
	logger    *zap.Logger
}

func NewEmployeeController(employees *services.EmployeeService, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{employees: employees, logger: logger}
}

func (ctl *EmployeeController) List(c *gin.Context) {
	page := services.Pagination{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}

	filter := services.EmployeeFilter{Name: c.Query("name")}
	if v, err := strconv.ParseFloat(c.Query("minSalary"), 64); err == nil {
		filter.MinSalary = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxSalary"), 64); err == nil {
		filter.MaxSalary = &v
	}

	result, err := ctl.employees.List(c.Request.Context(), filter, page)
	if err != nil {
		ctl.logger.Error("failed to list employees", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving employees"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctl *EmployeeController) Create(c *gin.Context) {
	var body struct {
		Name     string      `json:"name" binding:"required"`
		Email    string      `json:"email" binding:"required,email"`
		Password string      `json:"password" binding:"required,min=6"`
		Role     models.Role `json:"role" binding:"required,oneof=ADMIN EMPLOYEE USER"`
		HireDate string      `json:"hireDate" binding:"required"`
		Salary   *float64    `json:"salary" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, password, role, hire date and a non-negative salary are required"})
		return
	}

	hireDate, err := time.Parse(dateLayout, body.HireDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid hire date, expected YYYY-MM-DD"})
		return
	}

	employee, err := ctl.employees.Create(c.Request.Context(), body.Name, body.Email, body.Password, body.Role, hireDate, *body.Salary)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
			return
		}
		ctl.logger.Error("failed to create employee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating employee"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Employee created successfully", "employee": employee})
}

func (ctl *EmployeeController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var body struct {
		HireDate string   `json:"hireDate" binding:"required"`
		Salary   *float64 `json:"salary" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Hire date and a non-negative salary are required"})
		return
	}

	hireDate, err := time.Parse(dateLayout, body.HireDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid hire date, expected YYYY-MM-DD"})
		return
	}

	employee, err := ctl.employees.Update(c.Request.Context(), id, hireDate, *body.Salary)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
			return
		}
		ctl.logger.Error("failed to update employee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully", "employee": employee})
}

func (ctl *EmployeeController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := ctl.employees.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
			return
		}
		ctl.logger.Error("failed to delete employee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && v > 0 {
		return v
	}
	return defaultValue
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
