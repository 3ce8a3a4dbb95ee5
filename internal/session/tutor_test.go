package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketmaster/internal/lesson"
	"marketmaster/internal/models"
)

func TestNewTutorSessionSeedsOpeningLine(t *testing.T) {
	tutor := NewTutorSession(newMockGateway())

	turns := tutor.Turns()
	if len(turns) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(turns))
	}
	if turns[0].Role != models.RoleModel {
		t.Errorf("opening turn role = %q, want model", turns[0].Role)
	}
	if turns[0].Text != lesson.TutorOpeningLine {
		t.Errorf("opening turn text = %q, want the fixed opening line", turns[0].Text)
	}
}

func TestSendTurnAppendsUserAndReply(t *testing.T) {
	gw := newMockGateway()
	tutor := NewTutorSession(gw)

	if err := tutor.SendTurn(context.Background(), "Our plan is cheaper."); err != nil {
		t.Fatalf("SendTurn: %v", err)
	}

	turns := tutor.Turns()
	if len(turns) != 3 {
		t.Fatalf("transcript length = %d, want 3", len(turns))
	}
	if turns[1].Role != models.RoleUser || turns[1].Text != "Our plan is cheaper." {
		t.Errorf("user turn = %+v", turns[1])
	}
	if turns[2].Role != models.RoleModel || turns[2].Text != gw.reply {
		t.Errorf("model turn = %+v", turns[2])
	}
	if tutor.InFlight() {
		t.Error("in-flight still set after the turn completed")
	}
}

func TestSendTurnEmptyInputIsNoOp(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		gw := newMockGateway()
		tutor := NewTutorSession(gw)

		if err := tutor.SendTurn(context.Background(), input); err != nil {
			t.Errorf("SendTurn(%q): %v", input, err)
		}
		if turns := tutor.Turns(); len(turns) != 1 {
			t.Errorf("SendTurn(%q) grew transcript to %d", input, len(turns))
		}
		if _, sends, _ := gw.counts(); sends != 0 {
			t.Errorf("SendTurn(%q) reached the gateway", input)
		}
	}
}

func TestSendTurnTrimsWhitespace(t *testing.T) {
	tutor := NewTutorSession(newMockGateway())

	if err := tutor.SendTurn(context.Background(), "  hello  "); err != nil {
		t.Fatalf("SendTurn: %v", err)
	}
	if got := tutor.Turns()[1].Text; got != "hello" {
		t.Errorf("user turn text = %q, want %q", got, "hello")
	}
}

func TestSendTurnGatewayFailureSubstitutesApology(t *testing.T) {
	gw := newMockGateway()
	gw.sendErr = errors.New("upstream unavailable")
	tutor := NewTutorSession(gw)

	err := tutor.SendTurn(context.Background(), "Is your coverage better?")
	if !errors.Is(err, ErrGatewayTurn) {
		t.Fatalf("error = %v, want ErrGatewayTurn", err)
	}

	turns := tutor.Turns()
	if len(turns) != 3 {
		t.Fatalf("transcript length = %d, want 3", len(turns))
	}
	if turns[2].Text != lesson.TutorApologyLine {
		t.Errorf("model turn = %q, want the apology line", turns[2].Text)
	}

	// The conversation stays usable after a failed turn.
	gw.sendErr = nil
	if err := tutor.SendTurn(context.Background(), "Let me rephrase."); err != nil {
		t.Fatalf("follow-up SendTurn: %v", err)
	}
	if turns := tutor.Turns(); len(turns) != 5 {
		t.Errorf("transcript length after recovery = %d, want 5", len(turns))
	}
}

func TestSendTurnBlankReplyGetsFallbackLine(t *testing.T) {
	gw := newMockGateway()
	gw.reply = "  \n"
	tutor := NewTutorSession(gw)

	if err := tutor.SendTurn(context.Background(), "hello"); err != nil {
		t.Fatalf("SendTurn: %v", err)
	}
	if got := tutor.Turns()[2].Text; got != lesson.TutorEmptyReplyLine {
		t.Errorf("model turn = %q, want the fallback line", got)
	}
}

func TestSendTurnRejectedWhileInFlight(t *testing.T) {
	gw := newMockGateway()
	tutor := NewTutorSession(gw)
	tutor.inFlight = true

	if err := tutor.SendTurn(context.Background(), "second turn"); err != nil {
		t.Errorf("SendTurn: %v", err)
	}
	if turns := tutor.Turns(); len(turns) != 1 {
		t.Errorf("overlapping send grew transcript to %d", len(turns))
	}
	if _, sends, _ := gw.counts(); sends != 0 {
		t.Error("overlapping send reached the gateway")
	}
}

func TestRestartReseedsTranscript(t *testing.T) {
	gw := newMockGateway()
	tutor := NewTutorSession(gw)

	if err := tutor.SendTurn(context.Background(), "first"); err != nil {
		t.Fatalf("SendTurn: %v", err)
	}
	tutor.Restart()

	turns := tutor.Turns()
	if len(turns) != 1 {
		t.Fatalf("transcript length after restart = %d, want 1", len(turns))
	}
	if turns[0].Text != lesson.TutorOpeningLine {
		t.Errorf("restart seed = %q, want the opening line", turns[0].Text)
	}
	if chats, _, _ := gw.counts(); chats != 2 {
		t.Errorf("chat handles opened = %d, want 2", chats)
	}
}

func TestRestartDropsPendingReply(t *testing.T) {
	gw := newMockGateway()
	gw.blockSend = make(chan struct{})
	tutor := NewTutorSession(gw)

	done := make(chan error, 1)
	go func() {
		done <- tutor.SendTurn(context.Background(), "slow turn")
	}()

	// Wait for the turn to be registered before restarting.
	for !tutor.InFlight() {
		time.Sleep(time.Millisecond)
	}
	tutor.Restart()
	close(gw.blockSend)

	if err := <-done; err != nil {
		t.Fatalf("SendTurn: %v", err)
	}
	if turns := tutor.Turns(); len(turns) != 1 {
		t.Errorf("stale reply landed in the restarted transcript (length %d)", len(turns))
	}
	if tutor.InFlight() {
		t.Error("in-flight still set after the stale turn resolved")
	}
}
