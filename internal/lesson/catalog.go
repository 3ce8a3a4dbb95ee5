package lesson

import "marketmaster/internal/models"

// SectionInfo pairs a section identifier with its navigation label.
type SectionInfo struct {
	ID    models.Section
	Label string
}

var sections = []SectionInfo{
	{models.SectionIntro, "Goal Setting"},
	{models.SectionWarmUp, "Warm Up"},
	{models.SectionListening, "Listening"},
	{models.SectionLanguage, "Language Focus"},
	{models.SectionPerformance, "Performance"},
	{models.SectionBrandBattle, "Brand Battle"},
	{models.SectionRoleplay, "AI Roleplay"},
}

// Sections returns the lesson sections in display order.
func Sections() []SectionInfo {
	return sections
}

// DefaultSection is the section shown when a lesson session starts.
func DefaultSection() models.Section {
	return models.SectionIntro
}

// ValidSection reports whether id is a member of the closed section set.
func ValidSection(id models.Section) bool {
	for _, s := range sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// SectionLabel returns the navigation label for id, or "" if unknown.
func SectionLabel(id models.Section) string {
	for _, s := range sections {
		if s.ID == id {
			return s.Label
		}
	}
	return ""
}
