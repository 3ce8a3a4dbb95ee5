package models

// Brand is one side of a brand battle scenario.
type Brand struct {
	Name      string
	Color     string
	Strengths []string
}

// BattleScenario pairs two brands with a discussion context.
type BattleScenario struct {
	ID      int
	Title   string
	BrandA  Brand
	BrandB  Brand
	Context string
}

// PhraseGroup is one labelled set of arsenal phrases shown above the battle.
type PhraseGroup struct {
	Label   string
	Phrases []string
}
