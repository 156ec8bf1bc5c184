package leaderboardrouter

import (
	leaderboardhandlers "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// BasePath is where the leaderboard API is mounted.
const BasePath = "/leaderboards"

// Router registers the leaderboard HTTP routes.
type Router struct {
	handlers leaderboardhandlers.Handlers
}

// NewRouter creates a new leaderboard router.
func NewRouter(handlers leaderboardhandlers.Handlers) *Router {
	return &Router{handlers: handlers}
}

// Configure mounts every leaderboard route on mux. Public reads and score
// submission address a leaderboard by public key; admin operations address it
// by id.
func (r *Router) Configure(mux chi.Router) {
	h := r.handlers
	public := "/{" + leaderboardhandlers.PublicKeyParam + "}"
	admin := "/{" + leaderboardhandlers.LeaderboardIDParam + "}"

	mux.Route(BasePath, func(cr chi.Router) {
		// Serves both /leaderboards and /leaderboards/.
		cr.Post("/", h.HandleCreateLeaderboard)

		cr.Get(public, h.HandleGetLeaderboardInfo)
		cr.Post(public+"/scores", h.HandleSubmitScore)
		cr.Get(public+"/scores", h.HandleGetScores)
		cr.Get(public+"/scores/export", h.HandleExportScores)
		cr.Get(public+"/chart.png", h.HandleScoreChart)

		cr.Delete(admin, h.HandleDeleteLeaderboard)
		cr.Delete(admin+"/scores", h.HandleResetScores)
	})
}
