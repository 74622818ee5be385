package main

import (
	"log"
	"os"

	_ "taskapi/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"taskapi/internal/auth"
	"taskapi/internal/cache"
	"taskapi/internal/config"
	"taskapi/internal/db"
	"taskapi/internal/handler"
	"taskapi/internal/model"
	"taskapi/internal/repository"
	"taskapi/internal/router"
	"taskapi/internal/service"
)

// @title Task Management API
// @version 1.0
// @description Task management API with labels, pagination, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := openDB(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.TaskLabel{},
			&model.Task{},
			&model.Label{},
			&model.UserProfile{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Migration order follows foreign key dependencies
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.Label{},
		&model.Task{},
		&model.TaskLabel{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	labelRepo := repository.NewLabelRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	taskService := service.NewTaskService(taskRepo, cacheClient)
	labelService := service.NewLabelService(labelRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, authService, taskService, cfg)
	taskHandler := handler.NewTaskHandler(taskService)
	labelHandler := handler.NewLabelHandler(labelService)

	router.Register(e, cfg, userRepo, authHandler, userHandler, taskHandler, labelHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger UI: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return db.NewSQLite(cfg.SQLiteDSN)
	}
	return db.NewMySQL(cfg.MySQLDSN)
}
