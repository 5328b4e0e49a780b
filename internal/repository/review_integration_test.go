//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopfront/shopfront/internal/testutil"
)

// ============================================================================
// Review Repository Integration Tests
// ============================================================================

func TestIntegrationReviewRepository_CreateReview(t *testing.T) {
	ctx, repo := newReviewTestEnv(t)

	review := testutil.NewTestReview(t, "Great store, would shop again")

	if err := repo.CreateReview(ctx, review); err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}

	count, err := repo.CountReviews(ctx)
	if err != nil {
		t.Fatalf("CountReviews failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 review, got %d", count)
	}
}

func TestIntegrationReviewRepository_SampleReviews(t *testing.T) {
	ctx, repo := newReviewTestEnv(t)

	for i := 0; i < 10; i++ {
		review := testutil.NewTestReview(t, fmt.Sprintf("review number %d", i))
		if err := repo.CreateReview(ctx, review); err != nil {
			t.Fatalf("CreateReview %d failed: %v", i, err)
		}
	}

	sample, err := repo.SampleReviews(ctx, 4)
	if err != nil {
		t.Fatalf("SampleReviews failed: %v", err)
	}

	if len(sample) != 4 {
		t.Fatalf("expected sample of 4, got %d", len(sample))
	}

	seen := make(map[string]bool)
	for _, p := range sample {
		if p.FirstName == "" || p.Text == "" {
			t.Errorf("preview missing fields: %+v", p)
		}
		if seen[p.Text] {
			t.Errorf("sample contains duplicate review %q", p.Text)
		}
		seen[p.Text] = true
	}
}

func TestIntegrationReviewRepository_SampleReviews_FewerThanRequested(t *testing.T) {
	ctx, repo := newReviewTestEnv(t)

	review := testutil.NewTestReview(t, "the only review")
	if err := repo.CreateReview(ctx, review); err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}

	sample, err := repo.SampleReviews(ctx, 4)
	if err != nil {
		t.Fatalf("SampleReviews failed: %v", err)
	}
	if len(sample) != 1 {
		t.Errorf("expected sample of 1, got %d", len(sample))
	}
}

func TestIntegrationReviewRepository_SampleReviews_Empty(t *testing.T) {
	ctx, repo := newReviewTestEnv(t)

	sample, err := repo.SampleReviews(ctx, 4)
	if err != nil {
		t.Fatalf("SampleReviews failed: %v", err)
	}
	if len(sample) != 0 {
		t.Errorf("expected empty sample, got %d", len(sample))
	}
}

func newReviewTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetReviewsSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset reviews schema: %v", err)
	}

	return ctx, repo
}
