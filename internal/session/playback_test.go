package session

import (
	"context"
	"errors"
	"testing"
)

func TestPlayOrToggleFirstPlaySynthesizes(t *testing.T) {
	gw := newMockGateway()
	p := NewPlayback(gw)

	playing, err := p.PlayOrToggle(context.Background())
	if err != nil {
		t.Fatalf("PlayOrToggle: %v", err)
	}
	if !playing || !p.Playing() {
		t.Error("playback did not start after first play")
	}
	if !p.HasBuffer() {
		t.Error("buffer not retained after synthesis")
	}
	if p.SourceID() == "" {
		t.Error("no source handle after starting playback")
	}
	if _, _, synths := gw.counts(); synths != 1 {
		t.Errorf("synth calls = %d, want 1", synths)
	}
}

func TestPlayOrToggleReplayReusesBuffer(t *testing.T) {
	gw := newMockGateway()
	p := NewPlayback(gw)
	ctx := context.Background()

	if _, err := p.PlayOrToggle(ctx); err != nil {
		t.Fatalf("first play: %v", err)
	}
	if playing, _ := p.PlayOrToggle(ctx); playing {
		t.Error("second call did not pause")
	}
	if playing, _ := p.PlayOrToggle(ctx); !playing {
		t.Error("third call did not resume")
	}
	if _, _, synths := gw.counts(); synths != 1 {
		t.Errorf("synth calls = %d, want 1 (buffer is retained)", synths)
	}
}

func TestPlaybackSingleActiveSource(t *testing.T) {
	gw := newMockGateway()
	p := NewPlayback(gw)
	ctx := context.Background()

	p.PlayOrToggle(ctx)
	first := p.SourceID()
	p.PlayOrToggle(ctx) // pause
	p.PlayOrToggle(ctx) // new source
	second := p.SourceID()

	if first == second {
		t.Error("restarting playback reused the old source handle")
	}

	// Completion of the superseded source must not stop the new one.
	p.SourceEnded(first)
	if !p.Playing() {
		t.Error("stale source completion stopped the active source")
	}

	p.SourceEnded(second)
	if p.Playing() {
		t.Error("active source completion did not stop playback")
	}
	if !p.HasBuffer() {
		t.Error("natural completion discarded the buffer")
	}
}

func TestPlaybackSynthesisFailureResetsToEmpty(t *testing.T) {
	gw := newMockGateway()
	gw.synthErr = errors.New("quota exceeded")
	p := NewPlayback(gw)
	ctx := context.Background()

	playing, err := p.PlayOrToggle(ctx)
	if err == nil {
		t.Fatal("expected a synthesis error")
	}
	if playing || p.Playing() || p.Loading() || p.HasBuffer() {
		t.Error("failed synthesis left the player outside the empty state")
	}

	// A later attempt starts from scratch and succeeds.
	gw.synthErr = nil
	if playing, err := p.PlayOrToggle(ctx); err != nil || !playing {
		t.Errorf("retry after failure: playing=%v err=%v", playing, err)
	}
	if _, _, synths := gw.counts(); synths != 2 {
		t.Errorf("synth calls = %d, want 2", synths)
	}
}

func TestPlaybackReset(t *testing.T) {
	gw := newMockGateway()
	p := NewPlayback(gw)

	p.PlayOrToggle(context.Background())
	p.Reset()

	if p.Playing() || p.Loading() || p.HasBuffer() || p.SourceID() != "" {
		t.Error("Reset left state behind")
	}
	if p.WAV() != nil {
		t.Error("WAV returned data after Reset")
	}
}

func TestPlaybackWAV(t *testing.T) {
	gw := newMockGateway()
	p := NewPlayback(gw)

	if p.WAV() != nil {
		t.Error("WAV returned data before synthesis")
	}

	p.PlayOrToggle(context.Background())
	wav := p.WAV()
	if wav == nil {
		t.Fatal("WAV returned nil for a retained buffer")
	}
	// Mock emits 4 samples; header is 44 bytes.
	if len(wav) != 44+4*2 {
		t.Errorf("wav length = %d, want %d", len(wav), 44+4*2)
	}
}
