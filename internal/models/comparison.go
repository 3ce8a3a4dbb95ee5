package models

// ComparisonRow is one row of the research chart. Score runs 0-100 where 50
// is parity, above 50 favors the student's company and below 50 the
// competitor.
type ComparisonRow struct {
	Category   string
	MyCompany  string
	Competitor string
	Notes      string
	Score      int
}

// ScoreLabel classifies a comparison score for display.
func (r ComparisonRow) ScoreLabel() string {
	switch {
	case r.Score < 30:
		return "Weakness"
	case r.Score < 45:
		return "Slight Disadvantage"
	case r.Score > 70:
		return "Strength"
	case r.Score > 55:
		return "Slight Advantage"
	default:
		return "Parity / Equal"
	}
}
