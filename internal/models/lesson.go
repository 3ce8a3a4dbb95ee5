package models

// VocabularyItem is one flashcard in the warm-up section.
type VocabularyItem struct {
	Term       string
	Definition string
	Example    string
}

// DialogLine is one attributed line in a scripted conversation.
type DialogLine struct {
	Speaker string
	Text    string
}

// QuizQuestion is one listening-comprehension question with its answer key.
type QuizQuestion struct {
	Question string
	Options  []string
	Correct  int
}

// FocusPattern is one comparison structure taught in the language section.
type FocusPattern struct {
	Title   string
	Example string
	Type    string
}

// RewriteExercise asks the student to restate a sentence with a target
// pattern; the model answer is revealed on demand.
type RewriteExercise struct {
	Original string
	Hint     string
	Answer   string
}

// WordGroup is one labelled bank of tokens for the sentence builder.
type WordGroup struct {
	Label string
	Words []string
}
