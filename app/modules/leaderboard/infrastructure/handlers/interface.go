package leaderboardhandlers

import "net/http"

// Handlers serves the leaderboard HTTP API.
type Handlers interface {
	HandleCreateLeaderboard(w http.ResponseWriter, r *http.Request)
	HandleSubmitScore(w http.ResponseWriter, r *http.Request)
	HandleGetScores(w http.ResponseWriter, r *http.Request)
	HandleGetLeaderboardInfo(w http.ResponseWriter, r *http.Request)
	HandleDeleteLeaderboard(w http.ResponseWriter, r *http.Request)
	HandleResetScores(w http.ResponseWriter, r *http.Request)
	HandleExportScores(w http.ResponseWriter, r *http.Request)
	HandleScoreChart(w http.ResponseWriter, r *http.Request)
}
