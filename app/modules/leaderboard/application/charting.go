package leaderboardservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Black-And-White-Club/scoreboard-api/app/shared/results"
	"github.com/uptrace/bun"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colors used for rendered charts.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	TextColor  drawing.Color
}

// DefaultPalette is the palette used by RenderScoreChart.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorFromHex("1b1f24"),
	Bar:        drawing.ColorFromHex("e0a526"),
	TextColor:  drawing.ColorFromHex("e6e6e6"),
}

const (
	chartBarWidth   = 40
	chartBarSpacing = 12
	chartMinWidth   = 400
	chartHeight     = 400
)

// RenderScoreChart draws the top scores of a leaderboard as a PNG bar chart.
func (s *LeaderboardService) RenderScoreChart(ctx context.Context, publicKey string, limit *int) ([]byte, error) {
	ranked, err := execute(s, ctx, "RenderScoreChart", redact(publicKey), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]RankedScore, error], error) {
		n, err := s.effectiveLimit(limit)
		if err != nil {
			return results.FailureResult[[]RankedScore, error](err), nil
		}
		return s.topScoresLogic(ctx, db, publicKey, &n)
	})
	if err != nil {
		return nil, err
	}
	return GenerateScoreChart(ranked, DefaultPalette)
}

// GenerateScoreChart produces a PNG bar chart of ranked scores in the order given.
func GenerateScoreChart(ranked []RankedScore, palette ChartPalette) ([]byte, error) {
	if len(ranked) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	bars := make([]chart.Value, len(ranked))
	minScore, maxScore := ranked[0].Score, ranked[0].Score
	for i, r := range ranked {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("#%d %s", r.Rank, r.PlayerName),
			Value: float64(r.Score),
			Style: chart.Style{
				FillColor:   palette.Bar,
				StrokeColor: palette.Bar,
			},
		}
		minScore = min(minScore, r.Score)
		maxScore = max(maxScore, r.Score)
	}

	// An explicit range keeps single-value and all-equal charts renderable.
	lo := float64(min(minScore, 0))
	hi := float64(max(maxScore, 0))
	if hi <= lo {
		hi = lo + 1
	}

	width := max(chartMinWidth, len(bars)*(chartBarWidth+chartBarSpacing)+160)

	graph := chart.BarChart{
		Width:      width,
		Height:     chartHeight,
		BarWidth:   chartBarWidth,
		BarSpacing: chartBarSpacing,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{
			FontColor: palette.TextColor,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render score chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws the message straight onto a PNG renderer;
// chart.Chart refuses to render without a series.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No scores yet"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetFillColor(palette.Background)
	r.SetStrokeColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.FillStroke()

	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
