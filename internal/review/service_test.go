//go:build unit

package review

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-api/internal/bootcamp"
	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/cerror"
)

const (
	TestReviewId    = "5d7a514b5d2c12c7449be020"
	TestBootcampId  = "5d713995b721c3bb38c1f5d0"
	TestReviewerId  = "5d7a514b5d2c12c7449be043"
	TestOtherUserId = "5d7a514b5d2c12c7449be044"
)

var (
	testReviewer  = &user.UserDocument{Id: TestReviewerId, Role: user.RoleUser}
	testOtherUser = &user.UserDocument{Id: TestOtherUserId, Role: user.RoleUser}
	testAdmin     = &user.UserDocument{Id: "admin", Role: user.RoleAdmin}

	testPayload = &CreateReviewPayload{
		Title:  "Learned a ton!",
		Text:   "I learned a lot at this bootcamp",
		Rating: 8,
	}
)

func newTestReview() *ReviewDocument {
	return &ReviewDocument{
		Id:       TestReviewId,
		Title:    testPayload.Title,
		Rating:   testPayload.Rating,
		Bootcamp: TestBootcampId,
		User:     TestReviewerId,
	}
}

func float(value float64) *float64 {
	return &value
}

func TestNewService(t *testing.T) {
	reviewService := NewService(nil, nil)

	assert.Implements(t, (*Service)(nil), reviewService)
}

func TestService_GetReview(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("populates bootcamp detail", func(t *testing.T) {
		mockReviewRepository := NewMockRepository(mockController)
		mockReviewRepository.
			EXPECT().
			FindReviewWithId(gomock.Any(), TestReviewId).
			Return(newTestReview(), nil)

		mockBootcampRepository := bootcamp.NewMockRepository(mockController)
		mockBootcampRepository.
			EXPECT().
			FindBootcampWithId(gomock.Any(), TestBootcampId).
			Return(&bootcamp.BootcampDocument{Id: TestBootcampId, Name: "Devworks Bootcamp"}, nil)

		review, err := NewService(mockReviewRepository, mockBootcampRepository).GetReview(context.Background(), TestReviewId)

		require.NoError(t, err)
		require.NotNil(t, review.BootcampDetail)
		assert.Equal(t, "Devworks Bootcamp", review.BootcampDetail.Name)
	})

	t.Run("unknown review should return not found", func(t *testing.T) {
		mockReviewRepository := NewMockRepository(mockController)
		mockReviewRepository.
			EXPECT().
			FindReviewWithId(gomock.Any(), TestReviewId).
			Return(nil, cerror.NotFound("review", TestReviewId))

		_, err := NewService(mockReviewRepository, nil).GetReview(context.Background(), TestReviewId)

		assert.True(t, cerror.Is(err, cerror.KindNotFound))
	})
}

func TestService_AddReview(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path refreshes average rating", func(t *testing.T) {
		mockBootcampRepository := bootcamp.NewMockRepository(mockController)
		mockBootcampRepository.
			EXPECT().
			FindBootcampWithId(gomock.Any(), TestBootcampId).
			Return(&bootcamp.BootcampDocument{Id: TestBootcampId}, nil)
		mockBootcampRepository.
			EXPECT().
			SetAverage(gomock.Any(), TestBootcampId, bootcamp.AverageRatingField, float(7.5)).
			Return(nil)

		mockReviewRepository := NewMockRepository(mockController)
		mockReviewRepository.
			EXPECT().
			InsertReview(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, review *ReviewDocument) error {
				assert.Equal(t, TestReviewerId, review.User)
				assert.Equal(t, TestBootcampId, review.Bootcamp)
				return nil
			})
		mockReviewRepository.
			EXPECT().
			AverageRating(gomock.Any(), TestBootcampId).
			Return(float(7.5), nil)

		review, err := NewService(mockReviewRepository, mockBootcampRepository).
			AddReview(context.Background(), testReviewer, TestBootcampId, testPayload)

		require.NoError(t, err)
		assert.Equal(t, 8, review.Rating)
	})

	t.Run("unknown bootcamp should return not found", func(t *testing.T) {
		mockBootcampRepository := bootcamp.NewMockRepository(mockController)
		mockBootcampRepository.
			EXPECT().
			FindBootcampWithId(gomock.Any(), TestBootcampId).
			Return(nil, cerror.NotFound("bootcamp", TestBootcampId))

		_, err := NewService(nil, mockBootcampRepository).
			AddReview(context.Background(), testReviewer, TestBootcampId, testPayload)

		assert.True(t, cerror.Is(err, cerror.KindNotFound))
	})

	t.Run("second review should return validation error", func(t *testing.T) {
		mockBootcampRepository := bootcamp.NewMockRepository(mockController)
		mockBootcampRepository.
			EXPECT().
			FindBootcampWithId(gomock.Any(), TestBootcampId).
			Return(&bootcamp.BootcampDocument{Id: TestBootcampId}, nil)

		mockReviewRepository := NewMockRepository(mockController)
		mockReviewRepository.
			EXPECT().
			InsertReview(gomock.Any(), gomock.Any()).
			Return(cerror.ValidationError(alreadyReviewedMessage))

		_, err := NewService(mockReviewRepository, mockBootcampRepository).
			AddReview(context.Background(), testReviewer, TestBootcampId, testPayload)

		assert.True(t, cerror.Is(err, cerror.KindValidation))
	})
}

func TestService_UpdateReview(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("author updates title without touching the average", func(t *testing.T) {
		mockReviewRepository := NewMockRepository(mockController)
		mockReviewRepository.
			EXPECT().
			FindReviewWithId(gomock.Any(), TestReviewId).
			Return(newTestReview(), nil)
		mockReviewRepository.
			EXPECT().
			UpdateReviewById(gomock.Any(), TestReviewId, &UpdateReviewDocument{Title: "Great"}).
			Return(&ReviewDocument{Id: TestReviewId, Title: "Great"}, nil)

		review, err := NewService(mockReviewRepository, nil).
			UpdateReview(context.Background(), testReviewer, TestReviewId, &UpdateReviewPayload{Title: "Great"})

		require.NoError(t, err)
		assert.Equal(t, "Great", review.Title)
	})

	t.Run("other user should return forbidden", func(t *testing.T) {
		mockReviewRepository := NewMockRepository(mockController)
		mockReviewRepository.
			EXPECT().
			FindReviewWithId(gomock.Any(), TestReviewId).
			Return(newTestReview(), nil)

		_, err := NewService(mockReviewRepository, nil).
			UpdateReview(context.Background(), testOtherUser, TestReviewId, &UpdateReviewPayload{Rating: 1})

		assert.True(t, cerror.Is(err, cerror.KindForbidden))
	})
}

func TestService_DeleteReview(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	mockReviewRepository := NewMockRepository(mockController)
	mockReviewRepository.
		EXPECT().
		FindReviewWithId(gomock.Any(), TestReviewId).
		Return(newTestReview(), nil)
	mockReviewRepository.
		EXPECT().
		DeleteReviewById(gomock.Any(), TestReviewId).
		Return(nil)
	mockReviewRepository.
		EXPECT().
		AverageRating(gomock.Any(), TestBootcampId).
		Return(nil, nil)

	mockBootcampRepository := bootcamp.NewMockRepository(mockController)
	mockBootcampRepository.
		EXPECT().
		SetAverage(gomock.Any(), TestBootcampId, bootcamp.AverageRatingField, nil).
		Return(nil)

	err := NewService(mockReviewRepository, mockBootcampRepository).
		DeleteReview(context.Background(), testAdmin, TestReviewId)

	assert.NoError(t, err)
}
