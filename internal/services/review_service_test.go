package services

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wistara_backend/internal/services/dto"
	"wistara_backend/pkg/apperrors"
)

type serviceFixture struct {
	reviewRepo      *fakeReviewRepo
	destinationRepo *fakeDestinationRepo
	userRepo        *fakeUserRepo
	ratingService   RatingService
	generator       GeneratorService
	reviewService   ReviewService
}

func newServiceFixture(t *testing.T, usernames ...string) *serviceFixture {
	t.Helper()

	reviewRepo := newFakeReviewRepo()
	destinationRepo := newFakeDestinationRepo()
	userRepo := newFakeUserRepo(usernames...)

	ratingService := NewRatingService(reviewRepo, destinationRepo, nil)
	generator := NewGeneratorService(reviewRepo, destinationRepo, userRepo, ratingService)
	generator.(*GeneratorServiceImpl).rng = rand.New(rand.NewSource(1))
	reviewService := NewReviewService(reviewRepo, destinationRepo, ratingService, generator)

	return &serviceFixture{
		reviewRepo:      reviewRepo,
		destinationRepo: destinationRepo,
		userRepo:        userRepo,
		ratingService:   ratingService,
		generator:       generator,
		reviewService:   reviewService,
	}
}

func (f *serviceFixture) mustCreateReview(t *testing.T, authorID, destinationID string, rating float64) *dto.ReviewResponse {
	t.Helper()
	review, err := f.reviewService.CreateReview(context.Background(), nil, authorID, &dto.CreateReviewRequest{
		DestinationID: destinationID,
		Text:          "Tempat yang luar biasa!",
		Rating:        rating,
	})
	require.NoError(t, err)
	return review
}

func assertAppErrorCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestCreateReviewRecomputesRating(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("borobudur", "Borobudur Temple", "Magelang")

	f.mustCreateReview(t, "author-1", "borobudur", 5)
	f.mustCreateReview(t, "author-2", "borobudur", 4)
	f.mustCreateReview(t, "author-3", "borobudur", 4)

	destination, err := f.destinationRepo.FindByID(nil, "borobudur")
	require.NoError(t, err)
	assert.InDelta(t, 4.33, destination.Rating, 0.01)
}

func TestReviewLifecycleKeepsRatingInSync(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("bromo", "Mount Bromo", "East Java")

	f.mustCreateReview(t, "author-1", "bromo", 5)
	toDelete := f.mustCreateReview(t, "author-2", "bromo", 4)
	f.mustCreateReview(t, "author-3", "bromo", 4)

	f.mustCreateReview(t, "author-4", "bromo", 5)
	destination, _ := f.destinationRepo.FindByID(nil, "bromo")
	assert.InDelta(t, 4.5, destination.Rating, 0.01)

	err := f.reviewService.DeleteReview(context.Background(), nil, toDelete.ID, "author-2")
	require.NoError(t, err)

	destination, _ = f.destinationRepo.FindByID(nil, "bromo")
	assert.InDelta(t, 4.67, destination.Rating, 0.01)
}

func TestDeleteLastReviewResetsRatingToZero(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("toba", "Lake Toba", "North Sumatra")

	review := f.mustCreateReview(t, "author-1", "toba", 5)
	require.NoError(t, f.reviewService.DeleteReview(context.Background(), nil, review.ID, "author-1"))

	destination, _ := f.destinationRepo.FindByID(nil, "toba")
	assert.Zero(t, destination.Rating)
}

func TestCreateReviewUnknownDestination(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.reviewService.CreateReview(context.Background(), nil, "author-1", &dto.CreateReviewRequest{
		DestinationID: "atlantis",
		Text:          "tidak ada",
		Rating:        5,
	})
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestUpdateReviewOwnership(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("komodo", "Komodo National Park", "East Nusa Tenggara")
	review := f.mustCreateReview(t, "alice", "komodo", 4)

	newText := "Berubah pikiran."
	_, err := f.reviewService.UpdateReview(context.Background(), nil, review.ID, "bob", &dto.UpdateReviewRequest{Text: &newText})
	assertAppErrorCode(t, err, apperrors.CodeForbidden)

	// The review is untouched after the rejected update.
	unchanged, getErr := f.reviewService.GetReview(nil, review.ID)
	require.NoError(t, getErr)
	assert.Equal(t, review.Text, unchanged.Text)
}

func TestDeleteReviewOwnership(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("komodo", "Komodo National Park", "East Nusa Tenggara")
	review := f.mustCreateReview(t, "alice", "komodo", 4)

	err := f.reviewService.DeleteReview(context.Background(), nil, review.ID, "bob")
	assertAppErrorCode(t, err, apperrors.CodeForbidden)

	_, getErr := f.reviewService.GetReview(nil, review.ID)
	assert.NoError(t, getErr)
}

func TestUpdateReviewOnlyRecomputesOnRatingChange(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("lombok", "Lombok Island", "West Nusa Tenggara")
	review := f.mustCreateReview(t, "alice", "lombok", 4)

	callsBefore := f.reviewRepo.calculateCalls
	newText := "Masih bagus."
	_, err := f.reviewService.UpdateReview(context.Background(), nil, review.ID, "alice", &dto.UpdateReviewRequest{Text: &newText})
	require.NoError(t, err)
	assert.Equal(t, callsBefore, f.reviewRepo.calculateCalls, "text-only update must not recompute")

	newRating := 2.0
	updated, err := f.reviewService.UpdateReview(context.Background(), nil, review.ID, "alice", &dto.UpdateReviewRequest{Rating: &newRating})
	require.NoError(t, err)
	assert.Equal(t, 2.0, updated.Rating)

	destination, _ := f.destinationRepo.FindByID(nil, "lombok")
	assert.InDelta(t, 2.0, destination.Rating, 0.001)
}

func TestGetReviewNotFound(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.reviewService.GetReview(nil, "missing")
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestGetDestinationReviewsPagination(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("prambanan", "Prambanan Temple", "Yogyakarta")
	for i := 0; i < 7; i++ {
		f.mustCreateReview(t, fmt.Sprintf("author-%d", i), "prambanan", 4)
	}

	list, err := f.reviewService.GetDestinationReviews(context.Background(), nil, "prambanan", 1)
	require.NoError(t, err)
	assert.Len(t, list.Reviews, 3)
	assert.Equal(t, int64(7), list.Total)
	assert.Equal(t, 3, list.TotalPages)
	assert.Equal(t, ReviewPageSize, list.PageSize)

	last, err := f.reviewService.GetDestinationReviews(context.Background(), nil, "prambanan", 3)
	require.NoError(t, err)
	assert.Len(t, last.Reviews, 1)

	clamped, err := f.reviewService.GetDestinationReviews(context.Background(), nil, "prambanan", 99)
	require.NoError(t, err)
	assert.Equal(t, 3, clamped.Page)
	assert.Equal(t, last.Reviews, clamped.Reviews)
}

func TestGetDestinationReviewsBackfillsEmptyDestination(t *testing.T) {
	f := newServiceFixture(t, "AdiBayu", "Putri_Traveler", "WanderlustRian", "AndiPenjelajah", "SariWisata", "BudiAdventure")
	f.destinationRepo.add("wakatobi", "Wakatobi Islands", "Southeast Sulawesi")

	list, err := f.reviewService.GetDestinationReviews(context.Background(), nil, "wakatobi", 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, list.Total, int64(3))
	assert.LessOrEqual(t, list.Total, int64(5))

	persisted, _ := f.reviewRepo.FindReviewsByDestination(nil, "wakatobi")
	require.Equal(t, int(list.Total), len(persisted))
	authors := make(map[string]bool)
	for _, review := range persisted {
		assert.True(t, review.Synthetic)
		assert.Contains(t, []float64{4, 5}, review.Rating)
		assert.NotEmpty(t, review.Text)
		assert.False(t, authors[review.AuthorID], "pseudo-authors must be distinct")
		authors[review.AuthorID] = true
	}

	// The destination rating reflects the generated reviews.
	destination, _ := f.destinationRepo.FindByID(nil, "wakatobi")
	assert.GreaterOrEqual(t, destination.Rating, 4.0)

	// A second read serves the persisted reviews without generating more.
	again, err := f.reviewService.GetDestinationReviews(context.Background(), nil, "wakatobi", 1)
	require.NoError(t, err)
	assert.Equal(t, list.Total, again.Total)
}

func TestCreateReviewSurvivesAggregationFailure(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("derawan", "Derawan Islands", "East Kalimantan")
	f.reviewRepo.failCalculations = recomputeAttempts

	_, err := f.reviewService.CreateReview(context.Background(), nil, "author-1", &dto.CreateReviewRequest{
		DestinationID: "derawan",
		Text:          "Masih tersimpan.",
		Rating:        5,
	})
	assertAppErrorCode(t, err, apperrors.CodeAggregationFailed)

	// The committed review is never rolled back.
	count, _ := f.reviewRepo.CountReviewsByDestination(nil, "derawan")
	assert.Equal(t, int64(1), count)
}

func TestRecomputeRetriesTransientFailure(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("bunaken", "Bunaken Marine Park", "North Sulawesi")
	f.mustCreateReview(t, "author-1", "bunaken", 3)

	f.reviewRepo.failCalculations = recomputeAttempts - 1
	avg, err := f.ratingService.Recompute(context.Background(), nil, "bunaken")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, avg, 0.001)
}

func TestRecomputeRefreshesCache(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("borobudur", "Borobudur Temple", "Magelang")

	ratingCache := newFakeRatingCache()
	cached := NewRatingService(f.reviewRepo, f.destinationRepo, ratingCache)

	f.mustCreateReview(t, "author-1", "borobudur", 5)
	f.mustCreateReview(t, "author-2", "borobudur", 4)

	avg, err := cached.Recompute(context.Background(), nil, "borobudur")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, avg, 0.001)

	stats, ok, err := ratingCache.Get(context.Background(), "borobudur")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 4.5, stats.AverageRating, 0.001)
	assert.Equal(t, int64(2), stats.TotalReviews)
}

func TestGetStatsServedFromCache(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("bromo", "Mount Bromo", "East Java")
	f.mustCreateReview(t, "author-1", "bromo", 4)

	ratingCache := newFakeRatingCache()
	cached := NewRatingService(f.reviewRepo, f.destinationRepo, ratingCache)

	avg, total, err := cached.GetStats(context.Background(), nil, "bromo")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 0.001)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, 1, ratingCache.setCalls)

	// A warm cache short-circuits the aggregate query.
	callsBefore := f.reviewRepo.calculateCalls
	_, _, err = cached.GetStats(context.Background(), nil, "bromo")
	require.NoError(t, err)
	assert.Equal(t, callsBefore, f.reviewRepo.calculateCalls)
}

func TestRecomputeLockPerDestination(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("komodo", "Komodo National Park", "East Nusa Tenggara")
	f.destinationRepo.add("lombok", "Lombok Island", "West Nusa Tenggara")

	impl := f.ratingService.(*RatingServiceImpl)
	for i := 0; i < 5; i++ {
		_, err := impl.Recompute(context.Background(), nil, "komodo")
		require.NoError(t, err)
	}
	_, err := impl.Recompute(context.Background(), nil, "lombok")
	require.NoError(t, err)

	// One mutex per destination, reused across recomputes.
	assert.Len(t, impl.locks, 2)
}

func TestGetDestinationRatingStats(t *testing.T) {
	f := newServiceFixture(t)
	f.destinationRepo.add("bali-ubud", "Ubud", "Bali")
	f.mustCreateReview(t, "author-1", "bali-ubud", 5)
	f.mustCreateReview(t, "author-2", "bali-ubud", 3)

	stats, err := f.reviewService.GetDestinationRatingStats(context.Background(), nil, "bali-ubud")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, stats.AverageRating, 0.001)
	assert.Equal(t, int64(2), stats.TotalReviews)

	_, err = f.reviewService.GetDestinationRatingStats(context.Background(), nil, "missing")
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}
