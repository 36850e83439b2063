package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yoockh/devprofiles/internal/api/handlers"
	"github.com/yoockh/devprofiles/internal/api/middleware"
)

type Deps struct {
	Profile *handlers.ProfileHandler
	// Empty disables the guard on mutating routes.
	GuardSecret string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	profiles := r.Group("/profiles")
	profiles.GET("", d.Profile.List)
	profiles.GET("/:id", d.Profile.Get)

	guarded := profiles.Group("")
	guarded.Use(middleware.Guard(d.GuardSecret))
	guarded.POST("", d.Profile.Create)
	guarded.PUT("/:id", d.Profile.Update)
	guarded.DELETE("/:id", d.Profile.Delete)
}
