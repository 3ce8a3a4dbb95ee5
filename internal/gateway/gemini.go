package gateway

import (
	"context"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"marketmaster/internal/audio"
	"marketmaster/internal/lesson"
)

const tutorModelName = "gemini-1.5-flash"

// speakerVoices is the fixed two-speaker assignment for the listening
// script. Lines from unknown speakers fall back to the Manager voice.
var speakerVoices = map[string]string{
	"Manager": "en-GB-Standard-B",
	"Analyst": "en-US-Standard-C",
}

// Client talks to Gemini for tutor chat and to Cloud Text-to-Speech for
// listening audio. It implements Gateway.
type Client struct {
	genai *genai.Client
	model *genai.GenerativeModel
	tts   *texttospeech.Client
}

// NewClient builds the gateway client. The Gemini API key comes from
// configuration; Text-to-Speech uses application default credentials.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	ttsClient, err := texttospeech.NewClient(ctx)
	if err != nil {
		genaiClient.Close()
		return nil, fmt.Errorf("creating text-to-speech client: %w", err)
	}

	model := genaiClient.GenerativeModel(tutorModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(lesson.TutorScenarioInstruction)},
	}

	return &Client{
		genai: genaiClient,
		model: model,
		tts:   ttsClient,
	}, nil
}

// Close releases both underlying clients.
func (c *Client) Close() error {
	ttsErr := c.tts.Close()
	if err := c.genai.Close(); err != nil {
		return err
	}
	return ttsErr
}

// StartTutorChat opens a fresh Gemini chat session carrying the tutor
// scenario instruction.
func (c *Client) StartTutorChat() ChatHandle {
	return &geminiChat{session: c.model.StartChat()}
}

type geminiChat struct {
	session *genai.ChatSession
}

func (g *geminiChat) Send(ctx context.Context, text string) (string, error) {
	resp, err := g.session.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return "", fmt.Errorf("sending tutor turn: %w", err)
	}

	var reply strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				reply.WriteString(string(txt))
			}
		}
	}
	return reply.String(), nil
}

// Synthesize renders the script line by line with each speaker's assigned
// voice and concatenates the resulting PCM.
func (c *Client) Synthesize(ctx context.Context, script string) ([]byte, error) {
	var pcm []byte
	for _, raw := range strings.Split(script, "\n") {
		speaker, text, ok := strings.Cut(raw, ":")
		if !ok {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		voice, ok := speakerVoices[strings.TrimSpace(speaker)]
		if !ok {
			voice = speakerVoices["Manager"]
		}

		resp, err := c.tts.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
			Input: &texttospeechpb.SynthesisInput{
				InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
			},
			Voice: &texttospeechpb.VoiceSelectionParams{
				LanguageCode: voiceLanguage(voice),
				Name:         voice,
			},
			AudioConfig: &texttospeechpb.AudioConfig{
				AudioEncoding:   texttospeechpb.AudioEncoding_LINEAR16,
				SampleRateHertz: audio.SampleRate,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("synthesizing %q line: %w", strings.TrimSpace(speaker), err)
		}

		// LINEAR16 responses arrive wrapped in a WAV container.
		pcm = append(pcm, audio.StripWAVHeader(resp.AudioContent)...)
	}

	if len(pcm) == 0 {
		return nil, fmt.Errorf("script produced no audio")
	}
	return pcm, nil
}

// voiceLanguage derives the language code from a voice name such as
// "en-GB-Standard-B".
func voiceLanguage(voice string) string {
	parts := strings.SplitN(voice, "-", 3)
	if len(parts) < 2 {
		return "en-US"
	}
	return parts[0] + "-" + parts[1]
}
