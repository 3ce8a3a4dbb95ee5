package lesson

import "testing"

func TestNewAnswerVector(t *testing.T) {
	answers := NewAnswerVector()
	if len(answers) != len(QuizQuestions()) {
		t.Fatalf("NewAnswerVector() length = %d, want %d", len(answers), len(QuizQuestions()))
	}
	for i, a := range answers {
		if a != Unanswered {
			t.Errorf("slot %d = %d, want Unanswered", i, a)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		want    int
	}{
		{
			name:    "nothing answered",
			answers: []int{-1, -1, -1, -1},
			want:    0,
		},
		{
			name:    "all correct",
			answers: []int{1, 2, 1, 2},
			want:    4,
		},
		{
			name:    "all wrong",
			answers: []int{0, 0, 0, 0},
			want:    0,
		},
		{
			name:    "two correct",
			answers: []int{1, 2, 0, 0},
			want:    2,
		},
		{
			name:    "partially answered one correct",
			answers: []int{-1, 2, -1, -1},
			want:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.answers); got != tt.want {
				t.Errorf("Score(%v) = %d, want %d", tt.answers, got, tt.want)
			}
		})
	}
}

func TestScoreMonotonicOnFillingCorrectAnswers(t *testing.T) {
	answers := NewAnswerVector()
	prev := Score(answers)
	key := []int{1, 2, 1, 2}
	for i, correct := range key {
		answers[i] = correct
		got := Score(answers)
		if got < prev {
			t.Errorf("score decreased from %d to %d after answering question %d", prev, got, i)
		}
		prev = got
	}
	if prev != 4 {
		t.Errorf("final score = %d, want 4", prev)
	}
}

func TestAllAnswered(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		want    bool
	}{
		{name: "fresh vector", answers: []int{-1, -1, -1, -1}, want: false},
		{name: "one missing", answers: []int{1, 2, 1, -1}, want: false},
		{name: "complete", answers: []int{0, 0, 0, 0}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllAnswered(tt.answers); got != tt.want {
				t.Errorf("AllAnswered(%v) = %v, want %v", tt.answers, got, tt.want)
			}
		})
	}
}

func TestSelectAnswerLocksAfterCompletion(t *testing.T) {
	answers := NewAnswerVector()

	if !SelectAnswer(answers, 0, 1) {
		t.Fatal("first selection rejected")
	}
	// Changing a not-yet-locked answer is allowed.
	if !SelectAnswer(answers, 0, 3) {
		t.Fatal("re-selection before lock rejected")
	}

	for i := range answers {
		SelectAnswer(answers, i, 0)
	}
	if !AllAnswered(answers) {
		t.Fatal("quiz should be complete")
	}

	if SelectAnswer(answers, 0, 1) {
		t.Error("selection accepted after lock")
	}
	if answers[0] != 0 {
		t.Errorf("locked answer changed to %d", answers[0])
	}
}

func TestSelectAnswerRejectsOutOfRange(t *testing.T) {
	answers := NewAnswerVector()

	tests := []struct {
		name     string
		question int
		option   int
	}{
		{name: "negative question", question: -1, option: 0},
		{name: "question too large", question: len(answers), option: 0},
		{name: "negative option", question: 0, option: -1},
		{name: "option too large", question: 0, option: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if SelectAnswer(answers, tt.question, tt.option) {
				t.Errorf("SelectAnswer(%d, %d) accepted", tt.question, tt.option)
			}
		})
	}
}

func TestOptionReveal(t *testing.T) {
	locked := []int{1, 2, 1, 0} // complete, last one wrong
	open := []int{1, -1, -1, -1}

	tests := []struct {
		name     string
		answers  []int
		question int
		option   int
		want     string
	}{
		{name: "selected before lock", answers: open, question: 0, option: 1, want: "selected"},
		{name: "unselected before lock", answers: open, question: 0, option: 0, want: ""},
		{name: "correct after lock", answers: locked, question: 3, option: 2, want: "correct"},
		{name: "selected wrong after lock", answers: locked, question: 3, option: 0, want: "wrong"},
		{name: "selected correct after lock", answers: locked, question: 0, option: 1, want: "correct"},
		{name: "neutral after lock", answers: locked, question: 3, option: 3, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OptionReveal(tt.answers, tt.question, tt.option); got != tt.want {
				t.Errorf("OptionReveal(%d, %d) = %q, want %q", tt.question, tt.option, got, tt.want)
			}
		})
	}
}

func TestPerfectScoreScenario(t *testing.T) {
	answers := NewAnswerVector()
	for i, option := range []int{1, 2, 1, 2} {
		if !SelectAnswer(answers, i, option) {
			t.Fatalf("selection %d rejected", i)
		}
	}
	if !AllAnswered(answers) {
		t.Error("all questions answered but AllAnswered is false")
	}
	if got := Score(answers); got != 4 {
		t.Errorf("Score = %d, want 4", got)
	}
}
