package leaderboardservice

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildScoresWorkbook(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	data, err := buildScoresWorkbook([]RankedScore{
		{Rank: 1, PlayerName: "ada", Score: 120, SubmittedAt: at},
		{Rank: 2, PlayerName: "grace", Score: -4, SubmittedAt: at.Add(time.Minute)},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Rank", "Player", "Score", "Submitted At"}, rows[0])
	assert.Equal(t, []string{"1", "ada", "120", "2026-10-19T09:30:00Z"}, rows[1])
	assert.Equal(t, []string{"2", "grace", "-4", "2026-10-19T09:31:00Z"}, rows[2])
}

func TestGenerateScoreChart(t *testing.T) {
	tests := []struct {
		name   string
		ranked []RankedScore
	}{
		{name: "no scores", ranked: nil},
		{name: "single score", ranked: []RankedScore{{Rank: 1, PlayerName: "ada", Score: 7}}},
		{name: "equal and negative", ranked: []RankedScore{
			{Rank: 1, PlayerName: "ada", Score: -3},
			{Rank: 2, PlayerName: "grace", Score: -3},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png, err := GenerateScoreChart(tt.ranked, DefaultPalette)
			require.NoError(t, err)
			require.Greater(t, len(png), 8)
			assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), png[:8])
		})
	}
}
