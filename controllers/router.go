package controllers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/CrisOrc/prueba-tecnica-Konecta/config"
	"github.com/CrisOrc/prueba-tecnica-Konecta/middleware"
	"github.com/CrisOrc/prueba-tecnica-Konecta/models"
	"github.com/CrisOrc/prueba-tecnica-Konecta/pkg/token"
)

// SetupRouter wires all routes, middleware and controllers into the engine.
func SetupRouter(
	cfg *config.Config,
	tokens *token.Manager,
	auth *AuthController,
	employees *EmployeeController,
	requests *RequestController,
	users *UserController,
) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)

	api.GET("/users", users.List)
	api.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Test API"})
	})
	api.GET("/test/protected", middleware.RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Protected API"})
	})

	employee := api.Group("/employee")
	employee.Use(middleware.RequireAuth(tokens))
	{
		employee.GET("", employees.List)
		employee.POST("", middleware.RequireRoles(models.RoleAdmin), employees.Create)
		employee.PUT("/:id", middleware.RequireRoles(models.RoleAdmin), employees.Update)
		employee.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), employees.Delete)
	}

	request := api.Group("/request")
	request.Use(middleware.RequireAuth(tokens))
	{
		request.GET("", middleware.RequireRoles(models.RoleEmployee, models.RoleAdmin), requests.List)
		request.POST("", middleware.RequireRoles(models.RoleEmployee, models.RoleAdmin), requests.Create)
		request.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), requests.Delete)
	}

	return r
}
