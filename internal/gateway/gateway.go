package gateway

import "context"

// ChatHandle is one opaque conversational context held open with the AI
// gateway. A handle accumulates history across turns; discarding it ends
// the conversation (there is no close call on the gateway side).
type ChatHandle interface {
	// Send forwards one user turn and returns the model's textual reply.
	Send(ctx context.Context, text string) (string, error)
}

// Gateway is the boundary to the external generative-AI service. It is the
// application's only true external dependency.
type Gateway interface {
	// StartTutorChat creates a fresh chat handle preloaded with the tutor
	// scenario instruction.
	StartTutorChat() ChatHandle

	// Synthesize converts a two-speaker script into raw little-endian
	// 16-bit mono PCM at audio.SampleRate.
	Synthesize(ctx context.Context, script string) ([]byte, error)
}
