package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taskapi/internal/auth"
	"taskapi/internal/config"
	"taskapi/internal/handler"
	"taskapi/internal/middleware"
	"taskapi/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	taskHandler *handler.TaskHandler,
	labelHandler *handler.LabelHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes: JWT validation, then current-user resolution
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(cfg.JWTSecret),
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return new(auth.Claims)
			},
		}),
		middleware.LoadUser(users),
	)

	// User routes
	secured.GET("/users", userHandler.ListUsers)
	secured.POST("/users", userHandler.CreateUser)
	secured.GET("/users/:id", userHandler.GetUser)
	secured.PUT("/users/:id", userHandler.UpdateUser)
	secured.DELETE("/users/:id", userHandler.DeleteUser)
	secured.GET("/users/:id/tasks", userHandler.GetUserTasks)

	// Task routes, addressed by UUID
	secured.GET("/tasks", taskHandler.ListTasks)
	secured.POST("/tasks", taskHandler.CreateTask)
	secured.GET("/tasks/:uuid", taskHandler.GetTask)
	secured.GET("/tasks/:uuid/full", taskHandler.GetTaskFull)
	secured.PUT("/tasks/:uuid", taskHandler.UpdateTask)
	secured.DELETE("/tasks/:uuid", taskHandler.DeleteTask)
	secured.PUT("/tasks/:uuid/update_status", taskHandler.UpdateStatus)
	secured.PUT("/tasks/:uuid/update_priority", taskHandler.UpdatePriority)

	// Label routes
	secured.GET("/labels", labelHandler.ListLabels)
	secured.POST("/labels", labelHandler.CreateLabel)
	secured.GET("/labels/:id", labelHandler.GetLabel)
	secured.PUT("/labels/:id", labelHandler.UpdateLabel)
	secured.DELETE("/labels/:id", labelHandler.DeleteLabel)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
