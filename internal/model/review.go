package model

import "time"

// Review represents a stored customer testimonial.
type Review struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Text      string    `json:"review_text"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewPreview is the projection served by the random review listing.
// Only the reviewer's first name and the review text are exposed.
type ReviewPreview struct {
	FirstName string `json:"first_name"`
	Text      string `json:"review_text"`
}
