package lesson

// Unanswered is the sentinel value for a quiz slot with no selection yet.
const Unanswered = -1

// NewAnswerVector returns a fresh answer vector, one slot per question, all
// slots unanswered.
func NewAnswerVector() []int {
	answers := make([]int, len(quizQuestions))
	for i := range answers {
		answers[i] = Unanswered
	}
	return answers
}

// Score counts the positions where the selected option index matches the
// answer key. Unanswered slots never match.
func Score(answers []int) int {
	score := 0
	for i, selected := range answers {
		if i < len(quizQuestions) && selected == quizQuestions[i].Correct {
			score++
		}
	}
	return score
}

// AllAnswered reports whether every slot holds a selection. Once true the
// quiz is locked: answers may no longer be changed and correctness is
// revealed.
func AllAnswered(answers []int) bool {
	for _, selected := range answers {
		if selected == Unanswered {
			return false
		}
	}
	return true
}

// SelectAnswer records a selection, refusing out-of-range positions and any
// edit after the quiz has locked. It reports whether the vector changed.
func SelectAnswer(answers []int, question, option int) bool {
	if question < 0 || question >= len(answers) {
		return false
	}
	if option < 0 || question >= len(quizQuestions) || option >= len(quizQuestions[question].Options) {
		return false
	}
	if AllAnswered(answers) {
		return false
	}
	answers[question] = option
	return true
}

// OptionReveal classifies an option for display once the quiz has locked:
// "correct" for the key's option, "wrong" for a selected non-key option,
// "selected" before lock, and "" otherwise.
func OptionReveal(answers []int, question, option int) string {
	if question < 0 || question >= len(answers) || question >= len(quizQuestions) {
		return ""
	}
	selected := answers[question] == option
	if !AllAnswered(answers) {
		if selected {
			return "selected"
		}
		return ""
	}
	if option == quizQuestions[question].Correct {
		return "correct"
	}
	if selected {
		return "wrong"
	}
	return ""
}
