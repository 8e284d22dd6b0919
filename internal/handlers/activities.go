package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/metrics"
	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/services"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

type ActivityDetail struct {
	Description     string   `json:"description" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string   `json:"schedule" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int      `json:"max_participants" example:"12"`
	Participants    []string `json:"participants"`
}

// List godoc
// @Summary      List activities
// @Description  All activities with their enrolled participants, keyed by name
// @Tags         activities
// @Produce      json
// @Success      200 {object} map[string]ActivityDetail
// @Router       /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.activityService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load activities"})
		return
	}

	result := make(map[string]ActivityDetail, len(activities))
	for _, activity := range activities {
		emails := make([]string, 0, len(activity.Participants))
		for _, p := range activity.Participants {
			emails = append(emails, p.Email)
		}
		result[activity.Name] = ActivityDetail{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    emails,
		}
	}

	c.JSON(http.StatusOK, result)
}

// Signup godoc
// @Summary      Sign up a student
// @Description  Enroll a student email in an activity (teachers only)
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "Activity name"
// @Param        email query string true "Student email"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /activities/{name}/signup [post]
func (h *ActivityHandler) Signup(c *gin.Context) {
	name := c.Param("name")
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email query parameter required"})
		return
	}

	if err := h.activityService.Signup(name, email); err != nil {
		respondEnrollmentError(c, err)
		return
	}

	metrics.Signups.Inc()
	c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Signed up %s for %s", email, name)})
}

// Unregister godoc
// @Summary      Unregister a student
// @Description  Remove a student's enrollment from an activity (teachers only)
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "Activity name"
// @Param        email query string true "Student email"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /activities/{name}/unregister [delete]
func (h *ActivityHandler) Unregister(c *gin.Context) {
	name := c.Param("name")
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email query parameter required"})
		return
	}

	if err := h.activityService.Unregister(name, email); err != nil {
		respondEnrollmentError(c, err)
		return
	}

	metrics.Unregistrations.Inc()
	c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Unregistered %s from %s", email, name)})
}

func respondEnrollmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrAlreadySignedUp),
		errors.Is(err, services.ErrActivityFull),
		errors.Is(err, services.ErrNotSignedUp):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
