package handlers

const (
	SessionCookieName = "lesson_session"

	ErrInvalidFormData     = "Invalid form data"
	ErrUnknownSection      = "Unknown section"
	ErrInternalServerError = "Internal server error"
	ErrTooManyRequests     = "Too many requests"
	ErrInvalidCSRFToken    = "Invalid CSRF token"

	// AudioAlertMessage is shown as a blocking alert when speech synthesis
	// fails; the player is reset so the learner can simply try again.
	AudioAlertMessage = "Sorry, the listening audio could not be generated. Please try again."
)
