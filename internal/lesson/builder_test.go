package lesson

import (
	"testing"
	"time"
)

func TestSentenceBuilderAdd(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		accepted bool
	}{
		{name: "structure token", token: "When it comes to", accepted: true},
		{name: "subject token", token: "quality", accepted: true},
		{name: "closing period", token: ".", accepted: true},
		{name: "unknown token", token: "banana", accepted: false},
		{name: "empty token", token: "", accepted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b SentenceBuilder
			if got := b.Add(tt.token); got != tt.accepted {
				t.Errorf("Add(%q) = %v, want %v", tt.token, got, tt.accepted)
			}
		})
	}
}

func TestSentenceBuilderSequence(t *testing.T) {
	var b SentenceBuilder
	for _, tok := range []string{"When it comes to", "price", "our company", "is", "superior to", "the competition"} {
		if !b.Add(tok) {
			t.Fatalf("Add(%q) rejected", tok)
		}
	}

	want := "When it comes to price our company is superior to the competition"
	if got := b.Sentence(); got != want {
		t.Errorf("Sentence() = %q, want %q", got, want)
	}

	b.Undo()
	if got := b.Sentence(); got != "When it comes to price our company is superior to" {
		t.Errorf("after Undo, Sentence() = %q", got)
	}

	b.Clear()
	if len(b.Tokens()) != 0 {
		t.Errorf("after Clear, %d tokens remain", len(b.Tokens()))
	}
	if got := b.Sentence(); got != "" {
		t.Errorf("after Clear, Sentence() = %q", got)
	}
}

func TestSentenceBuilderUndoOnEmpty(t *testing.T) {
	var b SentenceBuilder
	b.Undo() // must not panic
	if len(b.Tokens()) != 0 {
		t.Errorf("Undo on empty builder produced %d tokens", len(b.Tokens()))
	}
}

func TestSentenceBuilderCopiedWindow(t *testing.T) {
	var b SentenceBuilder
	now := time.Now()

	if b.Copied(now) {
		t.Error("copied indicator lit before any copy")
	}

	b.MarkCopied(now)
	if !b.Copied(now.Add(time.Second)) {
		t.Error("copied indicator off inside the 2s window")
	}
	if b.Copied(now.Add(3 * time.Second)) {
		t.Error("copied indicator still lit after the window")
	}
}
