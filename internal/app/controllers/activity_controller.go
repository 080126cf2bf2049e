package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mergington/activities/internal/app/models/dto"
	"github.com/mergington/activities/internal/app/services"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/pkg/apperrors"
)

// ActivityController handles activity enrollment operations
type ActivityController struct {
	activityService services.ActivityService
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService services.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// GetAllActivities lists every activity with its participant roster
// @Summary Get all activities
// @Description Retrieves all activities with their accepted participants, keyed by activity name
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]dto.ActivityDetail "Activities retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [get]
func (c *ActivityController) GetAllActivities(ctx *gin.Context) {
	activities, err := c.activityService.GetAllActivities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result := make(map[string]dto.ActivityDetail, len(activities))
	for _, activity := range activities {
		participants := activity.Participants
		if participants == nil {
			participants = []string{}
		}
		result[activity.Name] = dto.ActivityDetail{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    participants,
		}
	}

	ctx.JSON(http.StatusOK, result)
}

// SignUp enrolls a student in an activity
// @Summary Sign up a student for an activity
// @Description Creates an accepted membership for the student, creating the student record on first contact
// @Tags activities
// @Accept json
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string false "Student email (alternatively in the request body)"
// @Param request body dto.EnrollmentRequest false "Student email"
// @Success 200 {object} dto.SuccessResponse "Signed up successfully"
// @Failure 400 {object} dto.ErrorResponse "Already signed up, activity full, or missing email"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{name}/signup [post]
func (c *ActivityController) SignUp(ctx *gin.Context) {
	activityName := ctx.Param("name")

	email, err := extractEmail(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.activityService.SignUp(ctx, activityName, email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

// Unregister removes a student from an activity
// @Summary Unregister a student from an activity
// @Description Deletes the student's accepted membership; the student record itself is kept
// @Tags activities
// @Accept json
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string false "Student email (alternatively in the request body)"
// @Param request body dto.EnrollmentRequest false "Student email"
// @Success 200 {object} dto.SuccessResponse "Unregistered successfully"
// @Failure 400 {object} dto.ErrorResponse "Student is not signed up or missing email"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{name}/unregister [delete]
func (c *ActivityController) Unregister(ctx *gin.Context) {
	activityName := ctx.Param("name")

	email, err := extractEmail(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.activityService.Unregister(ctx, activityName, email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	})
}

// extractEmail reads the student email from the query string, falling
// back to a JSON body. Only presence is validated; format checks wait
// for the real registration flow.
func extractEmail(ctx *gin.Context) (string, error) {
	if email := ctx.Query("email"); email != "" {
		return email, nil
	}

	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrValidationFailed, "email is required")
	}
	if err := middleware.ValidateStruct(&req); err != nil {
		return "", err
	}

	return req.Email, nil
}
