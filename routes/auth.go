package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/vasanthdommeti/Kiranna-Mart-Task/controllers/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/sign-in", authControllers.SignIn(deps.Auth))
		authGroup.POST("/skip", authControllers.Skip(deps.Auth))
		authGroup.GET("/session", authControllers.Session(deps.Auth))
	}
}
