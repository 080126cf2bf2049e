package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mergington/activities/internal/app/controllers"
	"github.com/mergington/activities/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	activityController *controllers.ActivityController,
) {
	// Activity enrollment routes (public access; authentication is a
	// future workflow)
	activities := router.Group("/activities")
	{
		activities.GET("", activityController.GetAllActivities)
		activities.POST("/:name/signup", activityController.SignUp)
		activities.DELETE("/:name/unregister", activityController.Unregister)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
}
