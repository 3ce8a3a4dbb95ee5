package lesson

import (
	"strings"

	"marketmaster/internal/models"
)

// Static lesson content. These tables are the whole curriculum: nothing in
// them is computed at runtime.

// TutorScenarioInstruction is the system instruction preloaded into every
// tutor chat session.
const TutorScenarioInstruction = `You are a helpful English tutor roleplaying with a student.
The scenario is: The student is dissatisfied with their current mobile phone provider and is asking you for advice.

Your goals:
1. Answer their questions about changing providers.
2. Use the following vocabulary naturally in your responses where appropriate: "a good deal", "exceptional", "beat", "superior to", "a cut above", "top-notch".
3. Encourage the student to compare price vs. quality.
4. Correct their grammar gently if they make major mistakes, but prioritize flow.
5. Keep responses concise (under 50 words) to keep the conversation moving.`

// TutorOpeningLine seeds the transcript of every new tutor session.
const TutorOpeningLine = "Hi there! I hear you're thinking about changing your mobile phone provider. What are you looking for in a new plan? A good deal on price, or better service?"

// TutorApologyLine substitutes for the model reply when the gateway fails.
const TutorApologyLine = "Sorry, I am having trouble connecting right now. Please try again."

// TutorEmptyReplyLine substitutes for a reply the gateway returned empty.
const TutorEmptyReplyLine = "I'm sorry, I didn't catch that."

// ListeningScript is the fixed two-speaker script synthesized for the
// listening exercise.
const ListeningScript = `Manager: I've been analyzing the competitor's new product launch, the X-500 series.
Analyst: It's certainly cheaper than our model.
Manager: Exactly. It's priced twenty percent lower. However, early reviews mention it overheats significantly.
Analyst: That's a major flaw. We should emphasize our advanced cooling technology in the next campaign.
Manager: I agree. Let's focus on reliability rather than trying to match their price.`

var vocabulary = []models.VocabularyItem{
	{Term: "a good deal (lower)", Definition: "Significantly lower; a lot lower.", Example: "Their prices are a good deal lower than ours."},
	{Term: "exceptional", Definition: "Unusually good; outstanding.", Example: "We provide exceptional customer service."},
	{Term: "to beat", Definition: "To do better than a competitor.", Example: "Competitors can't beat us in quality."},
	{Term: "superior to", Definition: "Better than.", Example: "Our new model is superior to the old one."},
	{Term: "top-notch", Definition: "Excellent; of the highest quality.", Example: "They have a top-notch staff."},
	{Term: "second-to-none", Definition: "The best; better than all others.", Example: "Our reliability is second-to-none."},
}

var warmUpDialog = []models.DialogLine{
	{Speaker: "Manager A", Text: "Who are your competitors?"},
	{Speaker: "Manager B", Text: "Well, we've got quite a few, but our biggest competitor is Cooperative Auto Service."},
	{Speaker: "Manager A", Text: "And how do you compare?"},
	{Speaker: "Manager B", Text: "Their prices are a good deal lower than ours, but when it comes to providing exceptional service and guaranteed satisfaction on repairs, they can't beat us."},
}

var quizQuestions = []models.QuizQuestion{
	{
		Question: "What is the competitor's product called?",
		Options:  []string{"The Z-100", "The X-500 series", "The Alpha model", "The Budget Buster"},
		Correct:  1,
	},
	{
		Question: "What is the main problem with the competitor's product?",
		Options:  []string{"It is too expensive", "It is too slow", "It overheats", "It breaks easily"},
		Correct:  2,
	},
	{
		Question: "What strategy does the Manager decide on?",
		Options:  []string{"Lowering their prices", "Focusing on reliability", "Ignoring the competitor", "Releasing a new model"},
		Correct:  1,
	},
	{
		Question: "What is the Manager's decision regarding pricing?",
		Options:  []string{"To cut prices by 20%", "To match the competitor's price", "Not to match the competitor's price", "To increase prices"},
		Correct:  2,
	},
}

var focusPatterns = []models.FocusPattern{
	{Title: "When it comes to...", Example: `"When it comes to quality, we are superior."`, Type: "noun / gerund"},
	{Title: "In terms of...", Example: `"In terms of price, we are somewhat more expensive."`, Type: "noun"},
	{Title: "As far as... is concerned", Example: `"As far as size is concerned, we are the market leader."`, Type: "noun"},
}

var rewriteExercises = []models.RewriteExercise{
	{Original: "Their service is better than ours.", Hint: "When it comes to...", Answer: "When it comes to service, they are superior to us."},
	{Original: "We are cheaper than them.", Hint: "In terms of...", Answer: "In terms of price, we are a good deal cheaper."},
	{Original: "Our market share is the biggest.", Hint: "As far as...", Answer: "As far as market share is concerned, we are the biggest."},
}

var wordGroups = []models.WordGroup{
	{Label: "Structure", Words: []string{"When it comes to", "In terms of", "As far as"}},
	{Label: "Subjects", Words: []string{"price", "quality", "customer service", "innovation", "our company", "the competition", "market share"}},
	{Label: "Verbs", Words: []string{"is", "are", "offers", "has"}},
	{Label: "Modifiers & Comparatives", Words: []string{"a good deal", "somewhat", "significantly", "slightly", "superior to", "better than", "cheaper than", "more expensive", "top-notch"}},
	{Label: "Endings", Words: []string{"concerned", "."}},
}

var battleScenarios = []models.BattleScenario{
	{
		ID:    1,
		Title: "The Smartphone Wars",
		BrandA: models.Brand{
			Name:      "iPhone (Apple)",
			Color:     "#475569",
			Strengths: []string{"Ecosystem integration", "Resale value", "User privacy", "Ease of use"},
		},
		BrandB: models.Brand{
			Name:      "Galaxy (Samsung)",
			Color:     "#2563eb",
			Strengths: []string{"Screen technology", "Customization", "Camera zoom", "Hardware specs"},
		},
		Context: "You are debating which phone to buy for the company work phones.",
	},
	{
		ID:    2,
		Title: "Coffee Culture",
		BrandA: models.Brand{
			Name:      "Starbucks",
			Color:     "#059669",
			Strengths: []string{"Convenience & speed", "Consistent taste", "Rewards program", "Work-friendly spaces"},
		},
		BrandB: models.Brand{
			Name:      "Local Hipster Cafe",
			Color:     "#d97706",
			Strengths: []string{"Bean quality", "Authentic atmosphere", "Supporting local", "Latte art skills"},
		},
		Context: "Deciding where to hold the informal team morning meeting.",
	},
	{
		ID:    3,
		Title: "EV Showdown",
		BrandA: models.Brand{
			Name:      "Tesla",
			Color:     "#dc2626",
			Strengths: []string{"Supercharger network", "Autopilot tech", "Brand status", "Software updates"},
		},
		BrandB: models.Brand{
			Name:      "Toyota Hybrid",
			Color:     "#0284c7",
			Strengths: []string{"Build reliability", "Manufacturing quality", "Service availability", "Physical buttons"},
		},
		Context: "Choosing a new fleet of vehicles for the sales team.",
	},
}

var phraseGroups = []models.PhraseGroup{
	{Label: "Structuring", Phrases: []string{"When it comes to...", "In terms of...", "As far as... is concerned"}},
	{Label: `Saying "Better"`, Phrases: []string{"Superior to", "A cut above", "Beats the competition"}},
	{Label: `Saying "Best"`, Phrases: []string{"Top-notch", "Second-to-none", "Unrivaled"}},
}

var learningObjectives = []string{
	"Compare products and services using natural business English",
	"Use comparative structures such as 'far more reliable' and 'slightly cheaper'",
	"Listen for key comparison phrases in a market research meeting",
	"Deliver a short competitive pitch",
	"Negotiate with an AI customer in a live roleplay",
}

var roleplayHints = []string{"superior to", "a good deal", "competitive", "drawback", "top-notch"}

var quickReplies = []string{"superior to", "cost-effective", "service"}

var pitchChecklist = []string{
	"Use 'In terms of'",
	"Use 'When it comes to'",
	"Use 'Superior to'",
	"Keep bullets concise",
}

// Vocabulary returns the warm-up flashcards.
func Vocabulary() []models.VocabularyItem { return vocabulary }

// WarmUpDialog returns the read-aloud dialog.
func WarmUpDialog() []models.DialogLine { return warmUpDialog }

// QuizQuestions returns the listening questions with their answer key.
func QuizQuestions() []models.QuizQuestion { return quizQuestions }

// FocusPatterns returns the comparison patterns taught in language focus.
func FocusPatterns() []models.FocusPattern { return focusPatterns }

// RewriteExercises returns the pattern-rewrite practice cards.
func RewriteExercises() []models.RewriteExercise { return rewriteExercises }

// WordGroups returns the sentence-builder token banks.
func WordGroups() []models.WordGroup { return wordGroups }

// BattleScenarios returns the brand battle scenarios in rotation order.
func BattleScenarios() []models.BattleScenario { return battleScenarios }

// PhraseGroups returns the language arsenal shown above the battle.
func PhraseGroups() []models.PhraseGroup { return phraseGroups }

// Objectives returns the lesson goals shown in the goal-setting section.
func Objectives() []string { return learningObjectives }

// RoleplayHints returns the suggestion words for the roleplay input.
func RoleplayHints() []string { return roleplayHints }

// QuickReplies returns the one-tap vocabulary chips under the chat input.
func QuickReplies() []string { return quickReplies }

// PitchChecklist returns the success checklist items for the pitch editor.
func PitchChecklist() []string { return pitchChecklist }

// DefaultPitchSlides returns the starter content for the two-slide pitch
// editor.
func DefaultPitchSlides() [2]models.PitchSlide {
	return [2]models.PitchSlide{
		{
			Title: "Why choose us?",
			Body:  "In terms of value, we offer the best package on the market.",
		},
		{
			Title: "The competition",
			Body:  "Their product is slightly cheaper, but ours is far more reliable.",
		},
	}
}

// ListeningScriptLines splits the listening script into attributed lines.
func ListeningScriptLines() []models.DialogLine {
	var lines []models.DialogLine
	for _, raw := range strings.Split(ListeningScript, "\n") {
		speaker, text, ok := strings.Cut(raw, ":")
		if !ok {
			continue
		}
		lines = append(lines, models.DialogLine{
			Speaker: strings.TrimSpace(speaker),
			Text:    strings.TrimSpace(text),
		})
	}
	return lines
}

// DefaultComparisonRows seeds the research chart. Callers own the returned
// slice; the defaults are copied on every call.
func DefaultComparisonRows() []models.ComparisonRow {
	return []models.ComparisonRow{
		{Category: "Prices", Notes: "Check online catalog", Score: 50},
		{Category: "Quality", Notes: "Read reviews", Score: 50},
		{Category: "Marketing", Notes: "Social media analysis", Score: 50},
		{Category: "Customer Service", Notes: "Call support line", Score: 50},
		{Category: "Sales", Notes: "Annual reports", Score: 50},
	}
}
