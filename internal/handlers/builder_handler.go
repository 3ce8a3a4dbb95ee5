package handlers

import (
	"net/http"
	"strconv"
	"time"

	"marketmaster/internal/models"
)

// BuilderHandler handles the sentence-builder and rewrite reveals in the
// language focus section.
type BuilderHandler struct{}

// NewBuilderHandler creates a new builder handler.
func NewBuilderHandler() *BuilderHandler {
	return &BuilderHandler{}
}

// AddToken appends one word-bank token to the sentence. Tokens outside the
// word bank are rejected.
func (h *BuilderHandler) AddToken(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	token := r.FormValue("token")

	sess.Lock()
	ok := sess.Builder.Add(token)
	sess.Unlock()
	if !ok {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/section/"+string(models.SectionLanguage), http.StatusSeeOther)
}

// Undo removes the most recent token.
func (h *BuilderHandler) Undo(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	sess.Lock()
	sess.Builder.Undo()
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionLanguage), http.StatusSeeOther)
}

// Clear empties the sentence.
func (h *BuilderHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	sess.Lock()
	sess.Builder.Clear()
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionLanguage), http.StatusSeeOther)
}

// Copy marks the sentence as copied; the page shows a "Copied!" indicator
// until the window elapses.
func (h *BuilderHandler) Copy(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	sess.Lock()
	sess.Builder.MarkCopied(time.Now())
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionLanguage), http.StatusSeeOther)
}

// RevealRewrite shows the model answer for one rewrite exercise.
func (h *BuilderHandler) RevealRewrite(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	sess.Lock()
	if index < 0 || index >= len(sess.RevealedRewrites) {
		sess.Unlock()
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}
	sess.RevealedRewrites[index] = true
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionLanguage), http.StatusSeeOther)
}
