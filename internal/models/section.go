package models

// Section identifies one top-level lesson screen. The set is closed;
// exactly one section is current per lesson session at any time.
type Section string

const (
	SectionIntro       Section = "intro"
	SectionWarmUp      Section = "warmup"
	SectionListening   Section = "practice"
	SectionLanguage    Section = "language"
	SectionPerformance Section = "performance"
	SectionBrandBattle Section = "brand_battle"
	SectionRoleplay    Section = "roleplay"
)
