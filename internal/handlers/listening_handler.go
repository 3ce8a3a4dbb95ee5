package handlers

import (
	"log"
	"net/http"
	"strconv"

	"marketmaster/internal/lesson"
	"marketmaster/internal/models"
)

// ListeningHandler handles the comprehension quiz, the transcript toggle,
// and audio playback.
type ListeningHandler struct{}

// NewListeningHandler creates a new listening handler.
func NewListeningHandler() *ListeningHandler {
	return &ListeningHandler{}
}

// Answer records one quiz answer. Out-of-range answers and changes after
// the quiz is complete are ignored.
func (h *ListeningHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	question, qErr := strconv.Atoi(r.FormValue("question"))
	option, oErr := strconv.Atoi(r.FormValue("option"))
	if qErr != nil || oErr != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	sess.Lock()
	lesson.SelectAnswer(sess.Answers, question, option)
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionListening), http.StatusSeeOther)
}

// ToggleTranscript shows or hides the dialog transcript.
func (h *ListeningHandler) ToggleTranscript(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	sess.Lock()
	sess.ShowTranscript = !sess.ShowTranscript
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionListening), http.StatusSeeOther)
}

// PlayAudio starts, pauses, or resumes the listening audio. The first play
// synthesizes the script; on failure the player resets and the page shows a
// blocking alert.
func (h *ListeningHandler) PlayAudio(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	sess.Lock()
	playback := sess.Playback
	sess.Unlock()

	if _, err := playback.PlayOrToggle(r.Context()); err != nil {
		log.Printf("Listening audio synthesis failed: %v", err)
		sess.Lock()
		sess.Alert = AudioAlertMessage
		sess.Unlock()
	}

	http.Redirect(w, r, "/section/"+string(models.SectionListening), http.StatusSeeOther)
}

// StreamAudio serves the retained buffer as WAV for the page's audio
// element.
func (h *ListeningHandler) StreamAudio(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	sess.Lock()
	playback := sess.Playback
	sess.Unlock()

	wav := playback.WAV()
	if wav == nil {
		http.Error(w, "No audio available", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(len(wav)))
	if _, err := w.Write(wav); err != nil {
		log.Printf("Error streaming listening audio: %v", err)
	}
}

// AudioEnded records natural completion of the active source. The page
// posts this from the audio element's ended event.
func (h *ListeningHandler) AudioEnded(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	sess.Lock()
	playback := sess.Playback
	sess.Unlock()

	playback.SourceEnded(r.FormValue("source"))
	w.WriteHeader(http.StatusNoContent)
}
