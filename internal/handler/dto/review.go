package dto

import (
	"time"

	"github.com/shopfront/shopfront/internal/model"
)

// SubmitReviewRequest represents the request body for POST /submit-review.
type SubmitReviewRequest struct {
	FirstName string `json:"first"`
	LastName  string `json:"last"`
	Text      string `json:"reviewText"`
}

// ReviewResponse represents a stored review in API responses.
type ReviewResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first"`
	LastName  string    `json:"last"`
	Text      string    `json:"reviewText"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitReviewResponse is the success envelope for review submission.
type SubmitReviewResponse struct {
	Message string         `json:"message"`
	Review  ReviewResponse `json:"review"`
}

// ReviewPreview is one entry in the random review listing.
type ReviewPreview struct {
	FirstName string `json:"first"`
	Text      string `json:"reviewText"`
}

// ReviewListResponse is the envelope for GET /reviews.
type ReviewListResponse struct {
	Reviews []ReviewPreview `json:"reviews"`
}

// ToReviewResponse converts a Review model to ReviewResponse DTO.
func ToReviewResponse(review *model.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		FirstName: review.FirstName,
		LastName:  review.LastName,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
}

// ToReviewListResponse converts review previews to the listing envelope.
func ToReviewListResponse(previews []model.ReviewPreview) ReviewListResponse {
	out := make([]ReviewPreview, len(previews))
	for i, p := range previews {
		out[i] = ReviewPreview{FirstName: p.FirstName, Text: p.Text}
	}
	return ReviewListResponse{Reviews: out}
}
