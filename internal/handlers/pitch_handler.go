package handlers

import (
	"net/http"
	"strconv"

	"marketmaster/internal/models"
)

// PitchHandler handles the pitch editor: slides, checklist, and the
// practice timer.
type PitchHandler struct{}

// NewPitchHandler creates a new pitch handler.
func NewPitchHandler() *PitchHandler {
	return &PitchHandler{}
}

// UpdateSlide stores the posted title and body for one slide.
func (h *PitchHandler) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil || n < 0 || n >= len(sess.Pitch.Slides) {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	sess.Lock()
	sess.Pitch.Slides[n].Title = r.FormValue("title")
	sess.Pitch.Slides[n].Body = r.FormValue("body")
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionPerformance), http.StatusSeeOther)
}

// SetActiveSlide switches the slide being edited.
func (h *PitchHandler) SetActiveSlide(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	n, err := strconv.Atoi(r.FormValue("slide"))
	if err != nil || n < 0 || n >= len(sess.Pitch.Slides) {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	sess.Lock()
	sess.Pitch.ActiveSlide = n
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionPerformance), http.StatusSeeOther)
}

// ToggleChecklist flips one success-checklist item.
func (h *PitchHandler) ToggleChecklist(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	item, err := strconv.Atoi(r.FormValue("item"))
	if err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	sess.Lock()
	if item < 0 || item >= len(sess.Pitch.Checklist) {
		sess.Unlock()
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}
	sess.Pitch.Checklist[item] = !sess.Pitch.Checklist[item]
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionPerformance), http.StatusSeeOther)
}

// UpdateTimer stores the practice timer state as reported by the page.
func (h *PitchHandler) UpdateTimer(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	seconds, err := strconv.Atoi(r.FormValue("seconds"))
	if err != nil || seconds < 0 {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}
	running := r.FormValue("running") == "true"

	sess.Lock()
	sess.Pitch.TimerSeconds = seconds
	sess.Pitch.TimerRunning = running
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionPerformance), http.StatusSeeOther)
}
