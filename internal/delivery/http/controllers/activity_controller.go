package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"activitysignup/internal/delivery/http/helpers"
	"activitysignup/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ActivityResponse is one activity record in the response for GET /activities.
// swagger:model ActivityResponse
type ActivityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns every activity keyed by name, each with description, schedule, capacity, and the current participant roster in signup order.
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]controllers.ActivityResponse
// @Failure 500 {object} helpers.DetailResponse
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDetailError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make(map[string]ActivityResponse, len(activities))
	for _, a := range activities {
		response[a.Name] = ActivityResponse{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants(),
		}
	}
	helpers.WriteJSON(w, http.StatusOK, response)
}

// SignUp godoc
// @Summary Sign a student up for an activity
// @Description Appends the student's email to the activity roster. The activity name is taken from the path (URL-decoded, may contain spaces) and the email from the query string.
// @Tags activities
// @Produce json
// @Param activity_name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.DetailResponse "Already signed up or activity full"
// @Failure 404 {object} helpers.DetailResponse "Activity not found"
// @Router /activities/{activity_name}/signup [post]
func (c *ActivityController) SignUp(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activityName")
	email := r.URL.Query().Get("email")
	if email == "" {
		helpers.WriteDetailError(w, http.StatusBadRequest, "email is required")
		return
	}

	if _, err := c.Service.SignUp(r.Context(), activityName, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			helpers.WriteDetailError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			helpers.WriteDetailError(w, http.StatusBadRequest, "Student is already signed up")
		case errors.Is(err, domain.ErrActivityFull):
			helpers.WriteDetailError(w, http.StatusBadRequest, "Activity is full")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteDetailError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	helpers.WriteMessage(w, fmt.Sprintf("%s signed up for %s", email, activityName))
}

// RemoveParticipant godoc
// @Summary Remove a student from an activity
// @Description Removes exactly the given email from the activity roster, leaving all other participants and their order untouched.
// @Tags activities
// @Produce json
// @Param activity_name path string true "Activity name"
// @Param email path string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.DetailResponse "Activity or participant not found"
// @Router /activities/{activity_name}/participants/{email} [delete]
func (c *ActivityController) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("activityName")
	email := r.PathValue("email")

	if err := c.Service.RemoveParticipant(r.Context(), activityName, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			helpers.WriteDetailError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrParticipantNotFound):
			helpers.WriteDetailError(w, http.StatusNotFound, "Participant not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteDetailError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	helpers.WriteMessage(w, fmt.Sprintf("Removed %s from %s", email, activityName))
}
