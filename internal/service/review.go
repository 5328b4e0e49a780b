package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/shopfront/shopfront/internal/metrics"
	"github.com/shopfront/shopfront/internal/model"
)

// ErrNoReviews indicates the review store currently holds zero reviews.
var ErrNoReviews = errors.New("no reviews found")

// sampleSize is the fixed number of reviews served per listing call.
const sampleSize = 4

// ReviewStore persists review records.
type ReviewStore interface {
	CreateReview(ctx context.Context, review *model.Review) error
	SampleReviews(ctx context.Context, n int) ([]model.ReviewPreview, error)
}

// ReviewService handles review submission and random listing.
type ReviewService struct {
	store     ReviewStore
	metrics   metrics.Recorder
	dbTimeout time.Duration
}

// NewReviewService creates a new ReviewService.
func NewReviewService(store ReviewStore, recorder metrics.Recorder, dbTimeout time.Duration) *ReviewService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if dbTimeout <= 0 {
		dbTimeout = defaultDBTimeout
	}
	return &ReviewService{
		store:     store,
		metrics:   recorder,
		dbTimeout: dbTimeout,
	}
}

// SubmitReviewInput defines input for submitting a review.
type SubmitReviewInput struct {
	FirstName string
	LastName  string
	Text      string
}

// SubmitReview validates the input and persists a timestamped review record.
func (s *ReviewService) SubmitReview(ctx context.Context, input SubmitReviewInput) (*model.Review, error) {
	first := strings.TrimSpace(input.FirstName)
	last := strings.TrimSpace(input.LastName)
	text := strings.TrimSpace(input.Text)

	if first == "" || last == "" || text == "" {
		return nil, ErrMissingFields
	}

	review := &model.Review{
		ID:        ulid.Make().String(),
		FirstName: first,
		LastName:  last,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	if err := s.store.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.metrics.IncReviewSubmitted()

	return review, nil
}

// ListRandom returns an independent random sample of up to sampleSize reviews,
// projected to first name and review text. Returns ErrNoReviews when the store
// holds zero reviews.
func (s *ReviewService) ListRandom(ctx context.Context) ([]model.ReviewPreview, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	previews, err := s.store.SampleReviews(ctx, sampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to sample reviews: %w", err)
	}

	if len(previews) == 0 {
		return nil, ErrNoReviews
	}

	s.metrics.IncReviewSampleServed()

	return previews, nil
}
