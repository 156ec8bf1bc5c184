package leaderboardhandlers

import (
	"net/http"
	"strconv"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleExportScores streams every score as an XLSX attachment.
func (h *LeaderboardHandlers) HandleExportScores(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "HandleExportScores")
	defer span.End()

	data, err := h.service.ExportScores(r.Context(), publicKey(r))
	if err != nil {
		h.writeServiceError(w, r, "ExportScores", err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="scores.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// HandleScoreChart renders the top scores as a PNG bar chart.
func (h *LeaderboardHandlers) HandleScoreChart(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "HandleScoreChart")
	defer span.End()

	limit, msg, ok := queryInt(r, "limit")
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, msg)
		return
	}

	png, err := h.service.RenderScoreChart(r.Context(), publicKey(r), limit)
	if err != nil {
		h.writeServiceError(w, r, "RenderScoreChart", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
