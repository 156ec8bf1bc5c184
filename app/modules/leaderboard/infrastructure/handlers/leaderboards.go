package leaderboardhandlers

import (
	"net/http"
)

type createLeaderboardRequest struct {
	Name *string `json:"name"`
}

// HandleCreateLeaderboard creates a leaderboard and returns its keys.
func (h *LeaderboardHandlers) HandleCreateLeaderboard(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "HandleCreateLeaderboard")
	defer span.End()

	ctx := r.Context()

	var req createLeaderboardRequest
	if msg, ok := decodeBody(w, r, &req); !ok {
		writeDetail(w, http.StatusUnprocessableEntity, msg)
		return
	}
	if req.Name == nil {
		writeDetail(w, http.StatusUnprocessableEntity, "name is required")
		return
	}

	keys, err := h.service.CreateLeaderboard(ctx, *req.Name)
	if err != nil {
		h.writeServiceError(w, r, "CreateLeaderboard", err)
		return
	}

	h.logger.InfoContext(ctx, "Leaderboard created", "leaderboard_id", keys.LeaderboardID)
	writeJSON(w, http.StatusOK, keys)
}

// HandleGetLeaderboardInfo returns the summary of a leaderboard.
func (h *LeaderboardHandlers) HandleGetLeaderboardInfo(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "HandleGetLeaderboardInfo")
	defer span.End()

	info, err := h.service.GetLeaderboardInfo(r.Context(), publicKey(r))
	if err != nil {
		h.writeServiceError(w, r, "GetLeaderboardInfo", err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
