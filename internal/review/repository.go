package review

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=review

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/config"
	"bootcamp-api/pkg/query"
)

const alreadyReviewedMessage = "user has already submitted a review for this bootcamp"

type Repository interface {
	InsertReview(ctx context.Context, review *ReviewDocument) error
	FindReviewWithId(ctx context.Context, reviewId string) (*ReviewDocument, error)
	FindReviews(ctx context.Context, bootcampId string, descriptor *query.Descriptor) (*query.Result[ReviewDocument], error)
	UpdateReviewById(ctx context.Context, reviewId string, review *UpdateReviewDocument) (*ReviewDocument, error)
	DeleteReviewById(ctx context.Context, reviewId string) error
	DeleteByBootcamp(ctx context.Context, bootcampId string) error
	AverageRating(ctx context.Context, bootcampId string) (*float64, error)
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	collection         *mongo.Collection
	bootcampCollection string
}

func NewRepository(mongoClient *mongo.Client, mongodbConfig *config.MongodbConfig) Repository {
	return &repository{
		collection: mongoClient.
			Database(mongodbConfig.Database).
			Collection(mongodbConfig.Collections[config.MongodbReviewCollection]),
		bootcampCollection: mongodbConfig.Collections[config.MongodbBootcampCollection],
	}
}

func (r *repository) InsertReview(ctx context.Context, review *ReviewDocument) error {
	_, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return cerror.ValidationError(alreadyReviewedMessage).
				WithFields(zap.String("bootcampId", review.Bootcamp), zap.String("userId", review.User))
		}

		return cerror.DependencyError("error occurred while insert review").
			WithFields(zap.Error(err))
	}

	return nil
}

func (r *repository) FindReviewWithId(ctx context.Context, reviewId string) (*ReviewDocument, error) {
	var review ReviewDocument
	filter := bson.D{{Key: "_id", Value: reviewId}}
	err := r.collection.FindOne(ctx, filter).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("review", reviewId)
		}

		return nil, cerror.DependencyError("error occurred while find review with id").
			WithFields(zap.Error(err))
	}

	return &review, nil
}

// FindReviews lists every review, or only the reviews of bootcampId when set.
func (r *repository) FindReviews(
	ctx context.Context, bootcampId string, descriptor *query.Descriptor,
) (*query.Result[ReviewDocument], error) {
	opts := query.Options{
		Populate: []query.Populate{{
			LocalField: "bootcamp",
			From:       r.bootcampCollection,
			As:         "bootcampDetail",
			Select:     []string{"name", "description"},
		}},
	}
	if bootcampId != "" {
		opts.Scope = bson.D{{Key: "bootcamp", Value: bootcampId}}
	}

	return query.Execute[ReviewDocument](ctx, r.collection, descriptor, opts)
}

func (r *repository) UpdateReviewById(
	ctx context.Context, reviewId string, review *UpdateReviewDocument,
) (*ReviewDocument, error) {
	var updated ReviewDocument
	filter := bson.D{{Key: "_id", Value: reviewId}}
	update := bson.D{{Key: "$set", Value: review}}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("review", reviewId)
		}

		return nil, cerror.DependencyError("error occurred while update review").
			WithFields(zap.Error(err))
	}

	return &updated, nil
}

func (r *repository) DeleteReviewById(ctx context.Context, reviewId string) error {
	filter := bson.D{{Key: "_id", Value: reviewId}}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return cerror.DependencyError("error occurred while delete review").
			WithFields(zap.Error(err))
	}

	if result.DeletedCount == 0 {
		return cerror.NotFound("review", reviewId)
	}

	return nil
}

func (r *repository) DeleteByBootcamp(ctx context.Context, bootcampId string) error {
	_, err := r.collection.DeleteMany(ctx, bson.D{{Key: "bootcamp", Value: bootcampId}})
	if err != nil {
		return cerror.DependencyError("error occurred while delete reviews of bootcamp").
			WithFields(zap.Error(err), zap.String("bootcampId", bootcampId))
	}

	return nil
}

// AverageRating returns nil when the bootcamp has no reviews.
func (r *repository) AverageRating(ctx context.Context, bootcampId string) (*float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "bootcamp", Value: bootcampId}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$bootcamp"},
			{Key: "averageRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, cerror.DependencyError("error occurred while aggregate average rating").
			WithFields(zap.Error(err))
	}
	defer cursor.Close(ctx) //nolint:errcheck

	var results []struct {
		AverageRating *float64 `bson:"averageRating"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, cerror.DependencyError("error occurred while decode average rating").
			WithFields(zap.Error(err))
	}

	if len(results) == 0 {
		return nil, nil
	}

	return results[0].AverageRating, nil
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "bootcamp", Value: 1},
				{Key: "user", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return cerror.DependencyError("error occurred while create review indexes").
			WithFields(zap.Error(err))
	}

	return nil
}
