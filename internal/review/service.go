package review

//go:generate mockgen -source=service.go -destination=mock_service.go -package=review

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bootcamp-api/internal/auth"
	"bootcamp-api/internal/bootcamp"
	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/logger"
	"bootcamp-api/pkg/query"
	"bootcamp-api/pkg/sanitize"
)

type Service interface {
	GetReviews(ctx context.Context, bootcampId string, descriptor *query.Descriptor) (*query.Result[ReviewDocument], error)
	GetReview(ctx context.Context, reviewId string) (*ReviewDocument, error)
	AddReview(ctx context.Context, requester *user.UserDocument, bootcampId string, review *CreateReviewPayload) (*ReviewDocument, error)
	UpdateReview(ctx context.Context, requester *user.UserDocument, reviewId string, review *UpdateReviewPayload) (*ReviewDocument, error)
	DeleteReview(ctx context.Context, requester *user.UserDocument, reviewId string) error
}

type service struct {
	reviewRepository   Repository
	bootcampRepository bootcamp.Repository
}

func NewService(reviewRepository Repository, bootcampRepository bootcamp.Repository) Service {
	return &service{
		reviewRepository:   reviewRepository,
		bootcampRepository: bootcampRepository,
	}
}

func (s *service) GetReviews(
	ctx context.Context, bootcampId string, descriptor *query.Descriptor,
) (*query.Result[ReviewDocument], error) {
	return s.reviewRepository.FindReviews(ctx, bootcampId, descriptor)
}

func (s *service) GetReview(ctx context.Context, reviewId string) (*ReviewDocument, error) {
	review, err := s.reviewRepository.FindReviewWithId(ctx, reviewId)
	if err != nil {
		return nil, err
	}

	found, err := s.bootcampRepository.FindBootcampWithId(ctx, review.Bootcamp)
	if err != nil {
		if !cerror.Is(err, cerror.KindNotFound) {
			return nil, err
		}

		return review, nil
	}

	review.BootcampDetail = found.Summary()
	return review, nil
}

func (s *service) AddReview(
	ctx context.Context, requester *user.UserDocument, bootcampId string, review *CreateReviewPayload,
) (*ReviewDocument, error) {
	if bootcampId == "" {
		return nil, cerror.ValidationError("please add a bootcamp")
	}

	_, err := s.bootcampRepository.FindBootcampWithId(ctx, bootcampId)
	if err != nil {
		return nil, err
	}

	document := &ReviewDocument{
		Id:        uuid.New().String(),
		Title:     sanitize.Text(review.Title),
		Text:      sanitize.Text(review.Text),
		Rating:    review.Rating,
		CreatedAt: time.Now().UTC(),
		Bootcamp:  bootcampId,
		User:      requester.Id,
	}
	err = s.reviewRepository.InsertReview(ctx, document)
	if err != nil {
		return nil, err
	}

	s.refreshAverageRating(ctx, bootcampId)
	return document, nil
}

func (s *service) UpdateReview(
	ctx context.Context, requester *user.UserDocument, reviewId string, review *UpdateReviewPayload,
) (*ReviewDocument, error) {
	found, err := s.findOwned(ctx, requester, reviewId)
	if err != nil {
		return nil, err
	}

	update := &UpdateReviewDocument{
		Title:  sanitize.Text(review.Title),
		Text:   sanitize.Text(review.Text),
		Rating: review.Rating,
	}
	if update.IsEmpty() {
		return found, nil
	}

	updated, err := s.reviewRepository.UpdateReviewById(ctx, reviewId, update)
	if err != nil {
		return nil, err
	}

	if update.Rating != 0 {
		s.refreshAverageRating(ctx, updated.Bootcamp)
	}
	return updated, nil
}

func (s *service) DeleteReview(ctx context.Context, requester *user.UserDocument, reviewId string) error {
	found, err := s.findOwned(ctx, requester, reviewId)
	if err != nil {
		return err
	}

	err = s.reviewRepository.DeleteReviewById(ctx, reviewId)
	if err != nil {
		return err
	}

	s.refreshAverageRating(ctx, found.Bootcamp)
	return nil
}

func (s *service) findOwned(ctx context.Context, requester *user.UserDocument, reviewId string) (*ReviewDocument, error) {
	found, err := s.reviewRepository.FindReviewWithId(ctx, reviewId)
	if err != nil {
		return nil, err
	}

	err = auth.AuthorizeOwnership(found.User, requester, "review")
	if err != nil {
		return nil, err
	}

	return found, nil
}

// refreshAverageRating only logs failures; the review change is already stored.
func (s *service) refreshAverageRating(ctx context.Context, bootcampId string) {
	log := logger.FromContext(ctx).With(zap.String("bootcampId", bootcampId))

	average, err := s.reviewRepository.AverageRating(ctx, bootcampId)
	if err != nil {
		log.Errorw("error occurred while calculate average rating", zap.Error(err))
		return
	}

	err = s.bootcampRepository.SetAverage(ctx, bootcampId, bootcamp.AverageRatingField, average)
	if err != nil {
		log.Errorw("error occurred while store average rating", zap.Error(err))
	}
}
