package impl

import (
	"context"
	"testing"

	domainerrors "ayurfresh/internal/domain/errors"
	"ayurfresh/internal/domain/repository"
	"ayurfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewFixtures struct {
	service usecase.ReviewUsecase
	store   *memStore
	factory *fakeFactory
}

func createTestReviewService(t *testing.T) reviewFixtures {
	t.Helper()

	store := newMemStore()
	factory := newFakeFactory(store)

	service := NewReviewService(ReviewServiceParams{
		TxManager:   &fakeTxManager{factory: factory},
		ReviewRepo:  factory.reviewRepo,
		ProductRepo: factory.productRepo,
		Logger:      newDiscardLogger(),
	})

	return reviewFixtures{service: service, store: store, factory: factory}
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	product := seedProduct(fx.store, "Amla Juice", "amla-juice-1", 180)
	userID := uuid.New()

	review, err := fx.service.CreateReview(context.Background(), userID, &usecase.CreateReviewInput{
		ProductSlug: product.Slug,
		Rating:      4,
		Comment:     "Fresh and tangy",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, review.ID)
	assert.Equal(t, userID, review.UserID)
	assert.Equal(t, product.ID, review.ProductID)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Fresh and tangy", review.Comment)
}

func TestReviewService_CreateReview_SecondSubmissionOverwrites(t *testing.T) {
	fx := createTestReviewService(t)
	product := seedProduct(fx.store, "Amla Juice", "amla-juice-1", 180)
	userID := uuid.New()

	first, err := fx.service.CreateReview(context.Background(), userID, &usecase.CreateReviewInput{
		ProductSlug: product.Slug,
		Rating:      4,
		Comment:     "Fresh and tangy",
	})
	require.NoError(t, err)

	second, err := fx.service.CreateReview(context.Background(), userID, &usecase.CreateReviewInput{
		ProductSlug: product.Slug,
		Rating:      2,
		Comment:     "Second bottle arrived stale",
	})

	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Rating)
	assert.Equal(t, "Second bottle arrived stale", second.Comment)

	stored, err := fx.factory.reviewRepo.FindByUserAndProduct(context.Background(), userID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Rating)

	_, total, err := fx.factory.reviewRepo.ListByProduct(context.Background(), product.ID, repository.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestReviewService_CreateReview_OverwriteLeavesOtherUsersAlone(t *testing.T) {
	fx := createTestReviewService(t)
	product := seedProduct(fx.store, "Amla Juice", "amla-juice-1", 180)
	firstUser := uuid.New()
	secondUser := uuid.New()

	_, err := fx.service.CreateReview(context.Background(), firstUser, &usecase.CreateReviewInput{
		ProductSlug: product.Slug,
		Rating:      5,
	})
	require.NoError(t, err)

	_, err = fx.service.CreateReview(context.Background(), secondUser, &usecase.CreateReviewInput{
		ProductSlug: product.Slug,
		Rating:      1,
	})
	require.NoError(t, err)

	kept, err := fx.factory.reviewRepo.FindByUserAndProduct(context.Background(), firstUser, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, kept.Rating)

	_, total, err := fx.factory.reviewRepo.ListByProduct(context.Background(), product.ID, repository.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestReviewService_CreateReview_UnknownProduct(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{
		ProductSlug: "no-such-product",
		Rating:      3,
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	product := seedProduct(fx.store, "Amla Juice", "amla-juice-1", 180)
	userID := uuid.New()

	review, err := fx.service.CreateReview(context.Background(), userID, &usecase.CreateReviewInput{
		ProductSlug: product.Slug,
		Rating:      3,
		Comment:     "Decent",
	})
	require.NoError(t, err)

	newRating := 5
	updated, err := fx.service.UpdateReview(context.Background(), userID, review.ID, &usecase.UpdateReviewInput{
		Rating: &newRating,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "Decent", updated.Comment)
}

func TestReviewService_UpdateReview_NotOwned(t *testing.T) {
	fx := createTestReviewService(t)
	product := seedProduct(fx.store, "Amla Juice", "amla-juice-1", 180)

	review, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{
		ProductSlug: product.Slug,
		Rating:      3,
	})
	require.NoError(t, err)

	newRating := 1
	_, err = fx.service.UpdateReview(context.Background(), uuid.New(), review.ID, &usecase.UpdateReviewInput{
		Rating: &newRating,
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_UpdateReview_UnknownReview(t *testing.T) {
	fx := createTestReviewService(t)

	newRating := 4
	_, err := fx.service.UpdateReview(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateReviewInput{
		Rating: &newRating,
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestReviewService_DeleteReview_Owner(t *testing.T) {
	fx := createTestReviewService(t)
	product := seedProduct(fx.store, "Amla Juice", "amla-juice-1", 180)
	userID := uuid.New()

	review, err := fx.service.CreateReview(context.Background(), userID, &usecase.CreateReviewInput{
		ProductSlug: product.Slug,
		Rating:      3,
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteReview(context.Background(), userID, false, review.ID))

	_, err = fx.factory.reviewRepo.FindByID(context.Background(), review.ID)
	assert.True(t, errors.Is(err, repository.ErrReviewNotFound))
}

func TestReviewService_DeleteReview_NotOwnedForbidden(t *testing.T) {
	fx := createTestReviewService(t)
	product := seedProduct(fx.store, "Amla Juice", "amla-juice-1", 180)

	review, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{
		ProductSlug: product.Slug,
		Rating:      3,
	})
	require.NoError(t, err)

	err = fx.service.DeleteReview(context.Background(), uuid.New(), false, review.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_DeleteReview_AdminDeletesAny(t *testing.T) {
	fx := createTestReviewService(t)
	product := seedProduct(fx.store, "Amla Juice", "amla-juice-1", 180)

	review, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{
		ProductSlug: product.Slug,
		Rating:      3,
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteReview(context.Background(), uuid.New(), true, review.ID))

	_, err = fx.factory.reviewRepo.FindByID(context.Background(), review.ID)
	assert.True(t, errors.Is(err, repository.ErrReviewNotFound))
}

func TestReviewService_ListProductReviews_NewestFirst(t *testing.T) {
	fx := createTestReviewService(t)
	product := seedProduct(fx.store, "Amla Juice", "amla-juice-1", 180)

	for _, rating := range []int{2, 3, 4} {
		_, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{
			ProductSlug: product.Slug,
			Rating:      rating,
		})
		require.NoError(t, err)
	}

	out, err := fx.service.ListProductReviews(context.Background(), product.Slug, repository.ListParams{Page: 1, PerPage: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Total)
	require.Len(t, out.Reviews, 2)
	assert.Equal(t, 4, out.Reviews[0].Rating)
	assert.Equal(t, 3, out.Reviews[1].Rating)
}

func TestReviewService_ListProductReviews_UnknownProduct(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.ListProductReviews(context.Background(), "no-such-product", repository.ListParams{})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
