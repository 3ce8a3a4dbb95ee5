package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"marketmaster/internal/gateway"
	"marketmaster/internal/lesson"
	"marketmaster/internal/models"
)

// ErrGatewayTurn marks a turn whose reply was substituted with the fixed
// apology line after a gateway failure. The conversation stays usable; the
// error exists so callers can log the failure distinctly from a real reply.
var ErrGatewayTurn = errors.New("tutor gateway turn failed")

// TutorSession owns one roleplay conversation: the gateway chat handle, the
// ordered transcript, and the in-flight flag. A session always holds at
// most one live handle; Restart supersedes the old one.
type TutorSession struct {
	mu       sync.Mutex
	gw       gateway.Gateway
	handle   gateway.ChatHandle
	turns    []models.ChatTurn
	inFlight bool
}

// NewTutorSession creates an active session: a fresh chat handle and a
// transcript seeded with the fixed opening line.
func NewTutorSession(gw gateway.Gateway) *TutorSession {
	t := &TutorSession{gw: gw}
	t.reseed()
	return t
}

func (t *TutorSession) reseed() {
	t.handle = t.gw.StartTutorChat()
	t.turns = []models.ChatTurn{{Role: models.RoleModel, Text: lesson.TutorOpeningLine}}
	t.inFlight = false
}

// Turns returns a copy of the transcript in display order.
func (t *TutorSession) Turns() []models.ChatTurn {
	t.mu.Lock()
	defer t.mu.Unlock()
	turns := make([]models.ChatTurn, len(t.turns))
	copy(turns, t.turns)
	return turns
}

// InFlight reports whether a turn is currently awaiting its reply.
func (t *TutorSession) InFlight() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight
}

// SendTurn forwards one user turn to the gateway. Empty or whitespace-only
// input is silently not performed, as is a send while another turn is in
// flight. The user turn is appended optimistically before the gateway is
// called; a gateway failure appends the fixed apology line in place of the
// reply and returns ErrGatewayTurn.
func (t *TutorSession) SendTurn(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)

	t.mu.Lock()
	if text == "" || t.handle == nil || t.inFlight {
		t.mu.Unlock()
		return nil
	}
	handle := t.handle
	t.turns = append(t.turns, models.ChatTurn{Role: models.RoleUser, Text: text})
	t.inFlight = true
	t.mu.Unlock()

	reply, err := handle.Send(ctx, text)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.handle != handle {
		// Restarted while the turn was pending; the reply belongs to a
		// superseded session and is dropped. Restart already cleared the
		// in-flight flag.
		return nil
	}
	t.inFlight = false
	if err != nil {
		t.turns = append(t.turns, models.ChatTurn{Role: models.RoleModel, Text: lesson.TutorApologyLine})
		return fmt.Errorf("%w: %v", ErrGatewayTurn, err)
	}
	if strings.TrimSpace(reply) == "" {
		reply = lesson.TutorEmptyReplyLine
	}
	t.turns = append(t.turns, models.ChatTurn{Role: models.RoleModel, Text: reply})
	return nil
}

// Restart discards the current handle and transcript and reseeds both. The
// old handle is simply dropped; the gateway gets no close notification.
func (t *TutorSession) Restart() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reseed()
}
