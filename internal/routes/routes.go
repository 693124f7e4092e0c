package routes

import (
	"github.com/gin-gonic/gin"

	"dailydo/internal/config"
	"dailydo/internal/handlers"
	"dailydo/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	todoHandler *handlers.TodoHandler,
	dashboardHandler *handlers.DashboardHandler,
) *gin.Engine {

	// ---- public
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)

	// ---- protected
	r.Use(middleware.AuthMiddleware(cfg))

	r.GET("/", dashboardHandler.Home)
	r.GET("/goals", dashboardHandler.Goals)

	todo := r.Group("/todo")
	{
		todo.GET("", todoHandler.Day)
		todo.POST("", todoHandler.Add)
		todo.PUT("", todoHandler.Update)
		todo.PUT("/reorder", todoHandler.Reorder)
		todo.POST("/postpone", todoHandler.Postpone)
		todo.GET("/log", todoHandler.Log)
	}

	return r
}
