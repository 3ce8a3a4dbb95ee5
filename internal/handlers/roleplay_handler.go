package handlers

import (
	"errors"
	"log"
	"math/rand"
	"net/http"
	"strings"

	"marketmaster/internal/lesson"
	"marketmaster/internal/models"
	"marketmaster/internal/session"
)

// RoleplayHandler drives the AI tutor conversation.
type RoleplayHandler struct{}

// NewRoleplayHandler creates a new roleplay handler.
func NewRoleplayHandler() *RoleplayHandler {
	return &RoleplayHandler{}
}

// Send forwards the learner's message to the tutor. Empty messages and
// sends while a turn is in flight are quietly ignored; a gateway failure is
// logged, with the apology line already in the transcript.
func (h *RoleplayHandler) Send(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	message := r.FormValue("message")

	sess.Lock()
	tutor := sess.EnsureTutor()
	if strings.TrimSpace(message) != "" && !tutor.InFlight() {
		sess.Draft = ""
	}
	sess.Unlock()

	if err := tutor.SendTurn(r.Context(), message); err != nil {
		if errors.Is(err, session.ErrGatewayTurn) {
			log.Printf("Tutor turn failed: %v", err)
		} else {
			log.Printf("Unexpected tutor error: %v", err)
		}
	}

	http.Redirect(w, r, "/section/"+string(models.SectionRoleplay), http.StatusSeeOther)
}

// Restart resets the conversation to the opening line.
func (h *RoleplayHandler) Restart(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	sess.Lock()
	tutor := sess.EnsureTutor()
	sess.Unlock()
	tutor.Restart()

	http.Redirect(w, r, "/section/"+string(models.SectionRoleplay), http.StatusSeeOther)
}

// Hint appends a random vocabulary hint to the draft input. The draft is
// independent of the transcript, so restarting the chat does not touch it.
func (h *RoleplayHandler) Hint(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	hints := lesson.RoleplayHints()
	hint := hints[rand.Intn(len(hints))]

	sess.Lock()
	sess.Draft = strings.TrimSpace(sess.Draft + " " + hint)
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionRoleplay), http.StatusSeeOther)
}
