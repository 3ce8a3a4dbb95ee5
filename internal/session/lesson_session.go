package session

import (
	"sync"
	"time"

	"marketmaster/internal/gateway"
	"marketmaster/internal/lesson"
	"marketmaster/internal/models"
)

// LessonSession is one learner's in-memory lesson state. Each browser gets
// its own session, keyed by the id carried in the session cookie. The
// embedded mutex guards the plain fields; Tutor and Playback carry their
// own locks because their operations block on the gateway.
type LessonSession struct {
	sync.Mutex

	ID        string
	CreatedAt time.Time

	gw gateway.Gateway

	Section models.Section
	NavOpen bool

	// Warm-up.
	FlippedCard int
	QuizMode    bool

	// Listening practice.
	Answers        []int
	ShowTranscript bool
	Alert          string
	Playback       *Playback

	// Language focus.
	Builder          lesson.SentenceBuilder
	RevealedRewrites []bool

	// Performance task.
	Pitch models.PitchDeck
	Rows  []models.ComparisonRow
	Story models.SuccessStory

	// Brand battle.
	ScenarioIndex int

	// Roleplay.
	Tutor *TutorSession
	Draft string
}

func newLessonSession(id string, gw gateway.Gateway) *LessonSession {
	s := &LessonSession{
		ID:        id,
		CreatedAt: time.Now(),
		gw:        gw,
		Section:   lesson.DefaultSection(),
	}
	for _, info := range lesson.Sections() {
		s.resetSection(info.ID)
	}
	return s
}

// SwitchTo navigates to the target section. Unknown ids are rejected. The
// section being left has its state reset, so every section mounts fresh;
// the mobile navigation panel closes on any switch. Callers must hold the
// session lock.
func (s *LessonSession) SwitchTo(target models.Section) bool {
	if !lesson.ValidSection(target) {
		return false
	}
	if target != s.Section {
		s.resetSection(s.Section)
	}
	s.Section = target
	s.NavOpen = false
	return true
}

// resetSection restores one section's state to its mount defaults.
func (s *LessonSession) resetSection(sec models.Section) {
	switch sec {
	case models.SectionWarmUp:
		s.FlippedCard = -1
		s.QuizMode = false
	case models.SectionListening:
		s.Answers = lesson.NewAnswerVector()
		s.ShowTranscript = false
		s.Alert = ""
		if s.Playback != nil {
			s.Playback.Reset()
		}
		s.Playback = NewPlayback(s.gw)
	case models.SectionLanguage:
		s.Builder = lesson.SentenceBuilder{}
		s.RevealedRewrites = make([]bool, len(lesson.RewriteExercises()))
	case models.SectionPerformance:
		s.Pitch = models.PitchDeck{
			Slides:    lesson.DefaultPitchSlides(),
			Checklist: make([]bool, len(lesson.PitchChecklist())),
		}
		s.Rows = lesson.DefaultComparisonRows()
		s.Story = models.SuccessStory{}
	case models.SectionBrandBattle:
		s.ScenarioIndex = 0
	case models.SectionRoleplay:
		s.Tutor = nil
		s.Draft = ""
	}
}

// EnsureTutor creates the roleplay conversation on first render of the
// roleplay section. Callers must hold the session lock.
func (s *LessonSession) EnsureTutor() *TutorSession {
	if s.Tutor == nil {
		s.Tutor = NewTutorSession(s.gw)
	}
	return s.Tutor
}

// TakeAlert returns the pending one-shot alert message and clears it.
// Callers must hold the session lock.
func (s *LessonSession) TakeAlert() string {
	msg := s.Alert
	s.Alert = ""
	return msg
}

// Scenario returns the active brand-battle scenario.
func (s *LessonSession) Scenario() models.BattleScenario {
	scenarios := lesson.BattleScenarios()
	return scenarios[s.ScenarioIndex%len(scenarios)]
}

// NextScenario advances to the next brand-battle scenario, wrapping around.
func (s *LessonSession) NextScenario() {
	s.ScenarioIndex = (s.ScenarioIndex + 1) % len(lesson.BattleScenarios())
}

// PrevScenario steps back to the previous brand-battle scenario, wrapping
// around.
func (s *LessonSession) PrevScenario() {
	n := len(lesson.BattleScenarios())
	s.ScenarioIndex = (s.ScenarioIndex - 1 + n) % n
}
