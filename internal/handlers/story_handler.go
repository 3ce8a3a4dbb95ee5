package handlers

import (
	"net/http"

	"marketmaster/internal/models"
)

// StoryHandler updates the customer success story builder.
type StoryHandler struct{}

// NewStoryHandler creates a new story handler.
func NewStoryHandler() *StoryHandler {
	return &StoryHandler{}
}

// UpdateField stores one posted story field.
func (h *StoryHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	field := r.FormValue("field")
	value := r.FormValue("value")

	sess.Lock()
	ok := setStoryField(&sess.Story, field, value)
	sess.Unlock()
	if !ok {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/section/"+string(models.SectionPerformance), http.StatusSeeOther)
}

func setStoryField(story *models.SuccessStory, field, value string) bool {
	switch field {
	case "client":
		story.ClientName = value
	case "industry":
		story.Industry = value
	case "product":
		story.Product = value
	case "challenge":
		story.Challenge = value
	case "solution":
		story.Solution = value
	case "results":
		story.Results = value
	case "testimonial":
		story.Testimonial = value
	default:
		return false
	}
	return true
}
