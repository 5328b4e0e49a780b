package repository

import (
	"context"
	"fmt"

	"github.com/shopfront/shopfront/internal/model"
)

// CreateReview inserts a new review into the database.
func (r *Repository) CreateReview(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (id, first_name, last_name, review_text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.FirstName,
		review.LastName,
		review.Text,
		review.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// SampleReviews draws an unordered random sample of up to n reviews without
// replacement, projecting only the reviewer's first name and the review text.
// Each call is an independent draw; no ordering is guaranteed across calls.
func (r *Repository) SampleReviews(ctx context.Context, n int) ([]model.ReviewPreview, error) {
	query := `
		SELECT first_name, review_text
		FROM reviews
		ORDER BY random()
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to sample reviews: %w", err)
	}
	defer rows.Close()

	var previews []model.ReviewPreview
	for rows.Next() {
		var p model.ReviewPreview
		if err := rows.Scan(&p.FirstName, &p.Text); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		previews = append(previews, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return previews, nil
}

// CountReviews returns the total number of stored reviews.
func (r *Repository) CountReviews(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM reviews`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}
