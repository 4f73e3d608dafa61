package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/CrisOrc/prueba-tecnica-Konecta/config"
	"github.com/CrisOrc/prueba-tecnica-Konecta/controllers"
	"github.com/CrisOrc/prueba-tecnica-Konecta/initializers"
	"github.com/CrisOrc/prueba-tecnica-Konecta/pkg/logger"
	"github.com/CrisOrc/prueba-tecnica-Konecta/pkg/password"
	"github.com/CrisOrc/prueba-tecnica-Konecta/pkg/token"
	"github.com/CrisOrc/prueba-tecnica-Konecta/repository"
	"github.com/CrisOrc/prueba-tecnica-Konecta/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger := logger.New(cfg.Env)
	defer zapLogger.Sync()

	db, err := initializers.ConnectToDB(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := initializers.Migrate(db); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiration)
	hasher := password.NewHasher()

	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	authService := services.NewAuthService(userRepo, tokens, hasher, zapLogger)
	employeeService := services.NewEmployeeService(employeeRepo, userRepo, hasher, zapLogger)
	requestService := services.NewRequestService(requestRepo, employeeRepo, userRepo, zapLogger)

	r := controllers.SetupRouter(
		cfg,
		tokens,
		controllers.NewAuthController(authService, zapLogger),
		controllers.NewEmployeeController(employeeService, zapLogger),
		controllers.NewRequestController(requestService, zapLogger),
		controllers.NewUserController(userRepo, zapLogger),
	)

	zapLogger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
