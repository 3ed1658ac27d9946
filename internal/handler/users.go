package handler

import (
	"net/http"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/inventory"
)

// ProvisionUserRequest creates a user, or returns the existing one by name
type ProvisionUserRequest struct {
	Username string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Role     string `json:"role" validate:"role"`
}

// HandleProvisionUser creates a user and initializes its stats
// @Summary Provision user
// @Description Creates the user if the name is free and initializes default stats. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProvisionUserRequest true "User"
// @Success 200 {object} domain.User
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/users [post]
func HandleProvisionUser(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireCaller(w, r)
		if !ok {
			return
		}

		var req ProvisionUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpProvisionUser); err != nil {
			return
		}

		user, err := svc.ProvisionUser(r.Context(), caller, req.Username, domain.Role(req.Role))
		if err != nil {
			respondServiceError(w, r, OpProvisionUser, err)
			return
		}
		respondJSON(w, http.StatusOK, user)
	}
}

// HandleGetUserStats returns a user's stats
// @Summary Get user stats
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User id"
// @Success 200 {object} domain.UserStats
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{userID}/stats [get]
func HandleGetUserStats(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireCaller(w, r)
		if !ok {
			return
		}
		userID, ok := pathID(w, r, PathParamUserID)
		if !ok {
			return
		}

		stats, err := svc.GetUserStats(r.Context(), caller, userID)
		if err != nil {
			respondServiceError(w, r, OpGetStats, err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}
