package handlers

import (
	"html/template"
	"net/http"
	"time"

	"marketmaster/internal/lesson"
	"marketmaster/internal/models"
	"marketmaster/internal/session"
)

// SectionHandler renders section pages and drives navigation.
type SectionHandler struct {
	templates *template.Template
	mw        *Middleware
}

// NewSectionHandler creates a new section handler.
func NewSectionHandler(templates *template.Template, mw *Middleware) *SectionHandler {
	return &SectionHandler{templates: templates, mw: mw}
}

// Home redirects to the current section page.
func (h *SectionHandler) Home(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	sess.Lock()
	target := sess.Section
	sess.Unlock()
	http.Redirect(w, r, "/section/"+string(target), http.StatusSeeOther)
}

// ShowSection renders one section page. Requesting a section other than the
// current one navigates there, so plain links work without a POST.
func (h *SectionHandler) ShowSection(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	target := models.Section(r.PathValue("id"))

	sess.Lock()
	if !sess.SwitchTo(target) {
		sess.Unlock()
		http.Error(w, ErrUnknownSection, http.StatusNotFound)
		return
	}
	h.renderSection(w, sess)
}

// SwitchSection handles form-based navigation and redirects to the section
// page.
func (h *SectionHandler) SwitchSection(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	target := models.Section(r.PathValue("id"))

	sess.Lock()
	ok := sess.SwitchTo(target)
	sess.Unlock()
	if !ok {
		http.Error(w, ErrUnknownSection, http.StatusNotFound)
		return
	}
	http.Redirect(w, r, "/section/"+string(target), http.StatusSeeOther)
}

// ToggleNav opens or closes the mobile navigation panel.
func (h *SectionHandler) ToggleNav(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	sess.Lock()
	sess.NavOpen = !sess.NavOpen
	target := sess.Section
	sess.Unlock()
	http.Redirect(w, r, "/section/"+string(target), http.StatusSeeOther)
}

// renderSection builds the view data for the current section and executes
// its template. The session lock is held on entry and released here.
func (h *SectionHandler) renderSection(w http.ResponseWriter, sess *session.LessonSession) {
	base := SectionPageData{
		Title:        "MarketMaster English | " + lesson.SectionLabel(sess.Section),
		Section:      sess.Section,
		SectionLabel: lesson.SectionLabel(sess.Section),
		Sections:     lesson.Sections(),
		NavOpen:      sess.NavOpen,
		CSRFToken:    h.mw.CSRFToken(sess),
		Alert:        sess.TakeAlert(),
	}

	var (
		name string
		data any
	)

	switch sess.Section {
	case models.SectionIntro:
		name = "intro.tmpl"
		data = IntroViewData{SectionPageData: base, Objectives: lesson.Objectives()}

	case models.SectionWarmUp:
		name = "warmup.tmpl"
		data = WarmUpViewData{
			SectionPageData: base,
			Vocabulary:      lesson.Vocabulary(),
			Dialog:          lesson.WarmUpDialog(),
			FlippedCard:     sess.FlippedCard,
			QuizMode:        sess.QuizMode,
		}

	case models.SectionListening:
		questions := lesson.QuizQuestions()
		classes := make([][]string, len(questions))
		for q := range questions {
			classes[q] = make([]string, len(questions[q].Options))
			for o := range questions[q].Options {
				classes[q][o] = lesson.OptionReveal(sess.Answers, q, o)
			}
		}
		name = "listening.tmpl"
		data = ListeningViewData{
			SectionPageData: base,
			Questions:       questions,
			Answers:         sess.Answers,
			Score:           lesson.Score(sess.Answers),
			Locked:          lesson.AllAnswered(sess.Answers),
			ShowTranscript:  sess.ShowTranscript,
			Transcript:      lesson.ListeningScriptLines(),
			OptionClasses:   classes,
			Loading:         sess.Playback.Loading(),
			Playing:         sess.Playback.Playing(),
			HasBuffer:       sess.Playback.HasBuffer(),
			SourceID:        sess.Playback.SourceID(),
		}

	case models.SectionLanguage:
		name = "language.tmpl"
		data = LanguageViewData{
			SectionPageData: base,
			Patterns:        lesson.FocusPatterns(),
			Rewrites:        lesson.RewriteExercises(),
			Revealed:        sess.RevealedRewrites,
			WordGroups:      lesson.WordGroups(),
			BuilderTokens:   sess.Builder.Tokens(),
			Sentence:        sess.Builder.Sentence(),
			Copied:          sess.Builder.Copied(time.Now()),
		}

	case models.SectionPerformance:
		name = "performance.tmpl"
		data = PerformanceViewData{
			SectionPageData: base,
			Pitch:           sess.Pitch,
			Checklist:       lesson.PitchChecklist(),
			Rows:            sess.Rows,
			Story:           sess.Story,
		}

	case models.SectionBrandBattle:
		name = "battle.tmpl"
		data = BattleViewData{
			SectionPageData: base,
			Scenario:        sess.Scenario(),
			ScenarioIndex:   sess.ScenarioIndex,
			ScenarioCount:   len(lesson.BattleScenarios()),
			PhraseGroups:    lesson.PhraseGroups(),
		}

	case models.SectionRoleplay:
		tutor := sess.EnsureTutor()
		name = "roleplay.tmpl"
		data = RoleplayViewData{
			SectionPageData: base,
			Turns:           tutor.Turns(),
			InFlight:        tutor.InFlight(),
			Draft:           sess.Draft,
			QuickReplies:    lesson.QuickReplies(),
		}
	}
	sess.Unlock()

	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "rendering "+name, err)
	}
}
