package handlers

import (
	"marketmaster/internal/lesson"
	"marketmaster/internal/models"
)

// SectionPageData is the shared frame of every section page: the catalog
// for the navigation list, the active section, and the one-shot alert.
type SectionPageData struct {
	Title        string
	Section      models.Section
	SectionLabel string
	Sections     []lesson.SectionInfo
	NavOpen      bool
	CSRFToken    string
	Alert        string
}

type IntroViewData struct {
	SectionPageData
	Objectives []string
}

type WarmUpViewData struct {
	SectionPageData
	Vocabulary  []models.VocabularyItem
	Dialog      []models.DialogLine
	FlippedCard int
	QuizMode    bool
}

type ListeningViewData struct {
	SectionPageData
	Questions      []models.QuizQuestion
	Answers        []int
	Score          int
	Locked         bool
	ShowTranscript bool
	Transcript     []models.DialogLine

	// OptionClasses[q][o] is "", "selected", "correct" or "wrong".
	OptionClasses [][]string

	Loading   bool
	Playing   bool
	HasBuffer bool
	SourceID  string
}

type LanguageViewData struct {
	SectionPageData
	Patterns   []models.FocusPattern
	Rewrites   []models.RewriteExercise
	Revealed   []bool
	WordGroups []models.WordGroup

	BuilderTokens []string
	Sentence      string
	Copied        bool
}

type PerformanceViewData struct {
	SectionPageData
	Pitch     models.PitchDeck
	Checklist []string
	Rows      []models.ComparisonRow
	Story     models.SuccessStory
}

type BattleViewData struct {
	SectionPageData
	Scenario      models.BattleScenario
	ScenarioIndex int
	ScenarioCount int
	PhraseGroups  []models.PhraseGroup
}

type RoleplayViewData struct {
	SectionPageData
	Turns        []models.ChatTurn
	InFlight     bool
	Draft        string
	QuickReplies []string
}
