package session

import (
	"context"
	"sync"

	"marketmaster/internal/audio"
	"marketmaster/internal/gateway"
)

// mockGateway satisfies gateway.Gateway without any network. Counters let
// tests assert how often the gateway was actually invoked.
type mockGateway struct {
	mu         sync.Mutex
	chatsOpen  int
	sendCalls  int
	synthCalls int

	reply    string
	sendErr  error
	synthErr error

	// blockSend, when set, makes Send wait until the channel is closed.
	blockSend chan struct{}
}

func newMockGateway() *mockGateway {
	return &mockGateway{
		reply: "That's a great point about value for money.",
	}
}

func (m *mockGateway) StartTutorChat() gateway.ChatHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatsOpen++
	return &mockChat{gw: m}
}

func (m *mockGateway) Synthesize(ctx context.Context, script string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.synthCalls++
	if m.synthErr != nil {
		return nil, m.synthErr
	}
	return audio.EncodePCM16([]float32{0, 0.5, -0.5, 0.25}), nil
}

func (m *mockGateway) counts() (chats, sends, synths int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.chatsOpen, m.sendCalls, m.synthCalls
}

type mockChat struct {
	gw *mockGateway
}

func (c *mockChat) Send(ctx context.Context, text string) (string, error) {
	c.gw.mu.Lock()
	c.gw.sendCalls++
	reply, err, block := c.gw.reply, c.gw.sendErr, c.gw.blockSend
	c.gw.mu.Unlock()
	if block != nil {
		<-block
	}
	return reply, err
}
