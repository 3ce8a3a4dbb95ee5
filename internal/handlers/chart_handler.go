package handlers

import (
	"net/http"
	"strconv"

	"marketmaster/internal/models"
)

// ChartHandler updates the market research comparison rows.
type ChartHandler struct{}

// NewChartHandler creates a new chart handler.
func NewChartHandler() *ChartHandler {
	return &ChartHandler{}
}

// UpdateRow stores the posted fields for one comparison row. The score is
// clamped to 0..100, where 50 reads as parity.
func (h *ChartHandler) UpdateRow(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	index, err := strconv.Atoi(r.PathValue("i"))
	if err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	score, err := strconv.Atoi(r.FormValue("score"))
	if err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	sess.Lock()
	if index < 0 || index >= len(sess.Rows) {
		sess.Unlock()
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}
	row := &sess.Rows[index]
	row.MyCompany = r.FormValue("mine")
	row.Competitor = r.FormValue("competitor")
	row.Notes = r.FormValue("notes")
	row.Score = score
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionPerformance), http.StatusSeeOther)
}
