package leaderboardhandlers

import "net/http"

// HandleDeleteLeaderboard removes a leaderboard and all of its scores.
func (h *LeaderboardHandlers) HandleDeleteLeaderboard(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "HandleDeleteLeaderboard")
	defer span.End()

	key := adminKey(r)
	if key == "" {
		writeDetail(w, http.StatusUnprocessableEntity, AdminKeyHeader+" header is required")
		return
	}

	if err := h.service.DeleteLeaderboard(r.Context(), leaderboardID(r), key); err != nil {
		h.writeServiceError(w, r, "DeleteLeaderboard", err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Leaderboard deleted"})
}

// HandleResetScores clears every score of a leaderboard.
func (h *LeaderboardHandlers) HandleResetScores(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "HandleResetScores")
	defer span.End()

	key := adminKey(r)
	if key == "" {
		writeDetail(w, http.StatusUnprocessableEntity, AdminKeyHeader+" header is required")
		return
	}

	if err := h.service.ResetScores(r.Context(), leaderboardID(r), key); err != nil {
		h.writeServiceError(w, r, "ResetScores", err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Scores cleared"})
}
