package leaderboardhandlers

import (
	"net/http"

	leaderboardservice "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/application"
)

type submitScoreRequest struct {
	PlayerName *string `json:"player_name"`
	Score      *int64  `json:"score"`
}

// HandleSubmitScore records a score against the public key in the path.
func (h *LeaderboardHandlers) HandleSubmitScore(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "HandleSubmitScore")
	defer span.End()

	var req submitScoreRequest
	if msg, ok := decodeBody(w, r, &req); !ok {
		writeDetail(w, http.StatusUnprocessableEntity, msg)
		return
	}
	switch {
	case req.PlayerName == nil:
		writeDetail(w, http.StatusUnprocessableEntity, "player_name is required")
		return
	case req.Score == nil:
		writeDetail(w, http.StatusUnprocessableEntity, "score is required")
		return
	}

	if err := h.service.SubmitScore(r.Context(), publicKey(r), *req.PlayerName, *req.Score); err != nil {
		h.writeServiceError(w, r, "SubmitScore", err)
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Score added successfully"})
}

// HandleGetScores lists ranked scores. Query: limit, order, since.
func (h *LeaderboardHandlers) HandleGetScores(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "HandleGetScores")
	defer span.End()

	limit, msg, ok := queryInt(r, "limit")
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, msg)
		return
	}

	q := r.URL.Query()
	scores, err := h.service.GetScores(r.Context(), leaderboardservice.ScoresRequest{
		PublicKey: publicKey(r),
		Limit:     limit,
		Order:     q.Get("order"),
		Since:     q.Get("since"),
	})
	if err != nil {
		h.writeServiceError(w, r, "GetScores", err)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}
