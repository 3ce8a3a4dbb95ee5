package handlers

import (
	"net/http"
	"strconv"

	"marketmaster/internal/lesson"
	"marketmaster/internal/models"
)

// WarmUpHandler handles the vocabulary card grid and quiz-mode toggle.
type WarmUpHandler struct{}

// NewWarmUpHandler creates a new warm-up handler.
func NewWarmUpHandler() *WarmUpHandler {
	return &WarmUpHandler{}
}

// FlipCard flips a vocabulary card face up, or face down when it is already
// flipped.
func (h *WarmUpHandler) FlipCard(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	card, err := strconv.Atoi(r.PathValue("card"))
	if err != nil || card < 0 || card >= len(lesson.Vocabulary()) {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	sess.Lock()
	if sess.FlippedCard == card {
		sess.FlippedCard = -1
	} else {
		sess.FlippedCard = card
	}
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionWarmUp), http.StatusSeeOther)
}

// ToggleQuizMode switches between definition cards and quiz mode. Flipped
// cards fold back when the mode changes.
func (h *WarmUpHandler) ToggleQuizMode(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	sess.Lock()
	sess.QuizMode = !sess.QuizMode
	sess.FlippedCard = -1
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionWarmUp), http.StatusSeeOther)
}
