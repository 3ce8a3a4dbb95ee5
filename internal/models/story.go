package models

// SuccessStory holds the fields of the customer success story builder. All
// fields are free text; the preview renders whatever has been entered.
type SuccessStory struct {
	ClientName  string
	Industry    string
	Product     string
	Challenge   string
	Solution    string
	Results     string
	Testimonial string
}
