package lesson

import (
	"strings"
	"time"
)

// copiedIndicatorWindow is how long the "copied" indicator stays lit after
// a copy before resetting on its own.
const copiedIndicatorWindow = 2 * time.Second

// SentenceBuilder holds the ordered token sequence of the sentence
// construction lab. Tokens can only be appended from the fixed word groups;
// the only other mutations are undo (drop last) and clear.
type SentenceBuilder struct {
	tokens   []string
	copiedAt time.Time
}

// Add appends a token if it belongs to one of the word groups. It reports
// whether the token was accepted.
func (b *SentenceBuilder) Add(token string) bool {
	if !knownToken(token) {
		return false
	}
	b.tokens = append(b.tokens, token)
	return true
}

// Undo removes the most recently added token, if any.
func (b *SentenceBuilder) Undo() {
	if len(b.tokens) > 0 {
		b.tokens = b.tokens[:len(b.tokens)-1]
	}
}

// Clear empties the sequence.
func (b *SentenceBuilder) Clear() {
	b.tokens = nil
}

// Tokens returns the current sequence in insertion order.
func (b *SentenceBuilder) Tokens() []string {
	return b.tokens
}

// Sentence serializes the sequence by joining tokens with single spaces.
func (b *SentenceBuilder) Sentence() string {
	return strings.Join(b.tokens, " ")
}

// MarkCopied records a copy at now, lighting the copied indicator.
func (b *SentenceBuilder) MarkCopied(now time.Time) {
	b.copiedAt = now
}

// Copied reports whether the copied indicator is still lit at now.
func (b *SentenceBuilder) Copied(now time.Time) bool {
	if b.copiedAt.IsZero() {
		return false
	}
	return now.Sub(b.copiedAt) < copiedIndicatorWindow
}

func knownToken(token string) bool {
	for _, group := range wordGroups {
		for _, w := range group.Words {
			if w == token {
				return true
			}
		}
	}
	return false
}
