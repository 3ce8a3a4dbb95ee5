package models

// PitchSlide is one editable slide in the performance task.
type PitchSlide struct {
	Title string
	Body  string
}

// PitchDeck is the state of the two-slide pitch editor, including the
// practice timer and the success checklist.
type PitchDeck struct {
	Slides       [2]PitchSlide
	ActiveSlide  int // 0 or 1
	Checklist    []bool
	TimerSeconds int
	TimerRunning bool
}
