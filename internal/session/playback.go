package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"marketmaster/internal/audio"
	"marketmaster/internal/gateway"
	"marketmaster/internal/lesson"
)

// Playback owns the listening-exercise audio: the decoded sample buffer
// (retained for replay after the first synthesis) and the active source
// handle. At most one source is active; starting playback supersedes any
// prior source.
type Playback struct {
	mu       sync.Mutex
	gw       gateway.Gateway
	samples  []float32
	loading  bool
	playing  bool
	sourceID string
}

// NewPlayback creates an empty playback manager.
func NewPlayback(gw gateway.Gateway) *Playback {
	return &Playback{gw: gw}
}

// PlayOrToggle drives the player. With no buffer yet it synthesizes the
// fixed listening script, decodes it, and starts playback immediately. With
// a buffer: playing toggles to paused, paused starts a new source. It
// reports whether audio is playing afterwards. A synthesis or decode
// failure resets the manager to empty (no partial buffer) and returns the
// error for the caller to surface.
func (p *Playback) PlayOrToggle(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return false, nil
	}

	if p.samples == nil {
		p.loading = true
		p.mu.Unlock()

		pcm, err := p.gw.Synthesize(ctx, lesson.ListeningScript)

		p.mu.Lock()
		defer p.mu.Unlock()
		p.loading = false
		if err != nil {
			p.samples = nil
			p.stopLocked()
			return false, fmt.Errorf("synthesizing listening audio: %w", err)
		}
		p.samples = audio.DecodePCM16(pcm)
		p.startLocked()
		return true, nil
	}

	if p.playing {
		p.stopLocked()
		p.mu.Unlock()
		return false, nil
	}
	p.startLocked()
	p.mu.Unlock()
	return true, nil
}

// startLocked creates a new source handle, superseding any prior one.
func (p *Playback) startLocked() {
	p.sourceID = uuid.New().String()
	p.playing = true
}

func (p *Playback) stopLocked() {
	p.sourceID = ""
	p.playing = false
}

// SourceEnded records natural completion of a source. Ids of superseded
// sources are ignored.
func (p *Playback) SourceEnded(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if id != "" && id == p.sourceID {
		p.stopLocked()
	}
}

// Reset returns the manager to empty: buffer discarded, nothing playing.
func (p *Playback) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.samples = nil
	p.loading = false
	p.stopLocked()
}

// Loading reports whether a synthesis request is outstanding.
func (p *Playback) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Playing reports whether a source is actively producing sound.
func (p *Playback) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// HasBuffer reports whether a decoded buffer is retained for replay.
func (p *Playback) HasBuffer() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.samples != nil
}

// SourceID returns the id of the active source, or "" when none.
func (p *Playback) SourceID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sourceID
}

// WAV returns the retained buffer as a playable WAV stream, or nil when no
// buffer has been decoded.
func (p *Playback) WAV() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.samples == nil {
		return nil
	}
	return audio.EncodeWAV(p.samples, audio.SampleRate)
}
