package handler

import (
	"net/http"
	"strconv"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/eventlog"
)

// EventsResponse lists a user's recent inventory events
type EventsResponse struct {
	UserID int64            `json:"user_id"`
	Events []eventlog.Event `json:"events"`
}

// HandleGetUserEvents returns a user's audit trail
// @Summary Get user events
// @Description Recent inventory events for a user, newest first. Admin or the user themself.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userID path int true "User id"
// @Param limit query int false "Maximum events (1-200, default 50)"
// @Success 200 {object} EventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/users/{userID}/events [get]
func HandleGetUserEvents(audit eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireCaller(w, r)
		if !ok {
			return
		}
		userID, ok := pathID(w, r, PathParamUserID)
		if !ok {
			return
		}
		if !caller.CanActFor(userID) {
			respondError(w, http.StatusForbidden, ErrMsgForbiddenError)
			return
		}

		limit := 0
		if raw := r.URL.Query().Get(QueryParamLimit); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > MaxEventLimit {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
				return
			}
			limit = n
		}

		events, err := audit.UserHistory(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, OpGetEvents, err)
			return
		}
		if events == nil {
			events = []eventlog.Event{}
		}
		respondJSON(w, http.StatusOK, EventsResponse{UserID: userID, Events: events})
	}
}
