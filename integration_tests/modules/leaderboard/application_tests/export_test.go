package leaderboardintegrationtests

import (
	"bytes"
	"testing"

	leaderboardservice "github.com/Black-And-White-Club/scoreboard-api/app/modules/leaderboard/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportScores_AllRowsBestFirst(t *testing.T) {
	deps := SetupTestLeaderboardService(t)
	keys := seedLeaderboard(t, deps, 15)

	data, err := deps.Service.ExportScores(deps.Ctx, keys.PublicKey)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Scores")
	require.NoError(t, err)
	require.Len(t, rows, 16, "header plus every score, beyond the default limit")
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "15", rows[15][0])

	_, err = deps.Service.ExportScores(deps.Ctx, "missing")
	assert.ErrorIs(t, err, leaderboardservice.ErrNotFound)
}

func TestRenderScoreChart(t *testing.T) {
	deps := SetupTestLeaderboardService(t)
	empty := seedLeaderboard(t, deps, 0)
	full := seedLeaderboard(t, deps, 5)

	for _, key := range []string{empty.PublicKey, full.PublicKey} {
		png, err := deps.Service.RenderScoreChart(deps.Ctx, key, intPtr(3))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	}
}
