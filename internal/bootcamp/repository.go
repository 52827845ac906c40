package bootcamp

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=bootcamp

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/config"
	"bootcamp-api/pkg/geo"
	"bootcamp-api/pkg/query"
)

const duplicateNameMessage = "a bootcamp with this name already exists"

type Repository interface {
	InsertBootcamp(ctx context.Context, bootcamp *BootcampDocument) error
	FindBootcampWithId(ctx context.Context, bootcampId string) (*BootcampDocument, error)
	FindBootcamps(ctx context.Context, descriptor *query.Descriptor) (*query.Result[BootcampDocument], error)
	FindBootcampsWithin(ctx context.Context, region *geo.Region) ([]BootcampDocument, error)
	CountBootcampsWithUser(ctx context.Context, userId string) (int64, error)
	UpdateBootcampById(ctx context.Context, bootcampId string, bootcamp *UpdateBootcampDocument) (*BootcampDocument, error)
	SetAverage(ctx context.Context, bootcampId, field string, average *float64) error
	DeleteBootcampById(ctx context.Context, bootcampId string) error
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	collection       *mongo.Collection
	courseCollection string
}

func NewRepository(mongoClient *mongo.Client, mongodbConfig *config.MongodbConfig) Repository {
	return &repository{
		collection: mongoClient.
			Database(mongodbConfig.Database).
			Collection(mongodbConfig.Collections[config.MongodbBootcampCollection]),
		courseCollection: mongodbConfig.Collections[config.MongodbCourseCollection],
	}
}

func (r *repository) InsertBootcamp(ctx context.Context, bootcamp *BootcampDocument) error {
	_, err := r.collection.InsertOne(ctx, bootcamp)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return cerror.ValidationError(duplicateNameMessage).
				WithFields(zap.String("name", bootcamp.Name))
		}

		return cerror.DependencyError("error occurred while insert bootcamp").
			WithFields(zap.Error(err))
	}

	return nil
}

func (r *repository) FindBootcampWithId(ctx context.Context, bootcampId string) (*BootcampDocument, error) {
	var bootcamp BootcampDocument
	filter := bson.D{{Key: "_id", Value: bootcampId}}
	err := r.collection.FindOne(ctx, filter).Decode(&bootcamp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("bootcamp", bootcampId)
		}

		return nil, cerror.DependencyError("error occurred while find bootcamp with id").
			WithFields(zap.Error(err))
	}

	return &bootcamp, nil
}

func (r *repository) FindBootcamps(
	ctx context.Context, descriptor *query.Descriptor,
) (*query.Result[BootcampDocument], error) {
	return query.Execute[BootcampDocument](ctx, r.collection, descriptor, query.Options{
		Populate: []query.Populate{{
			LocalField:   "_id",
			From:         r.courseCollection,
			ForeignField: "bootcamp",
			As:           "courses",
			Select:       []string{"title", "weeks", "tuition"},
			Many:         true,
		}},
	})
}

func (r *repository) FindBootcampsWithin(ctx context.Context, region *geo.Region) ([]BootcampDocument, error) {
	cursor, err := r.collection.Find(ctx, region.Filter("location"))
	if err != nil {
		return nil, cerror.DependencyError("error occurred while find bootcamps within radius").
			WithFields(zap.Error(err))
	}
	defer cursor.Close(ctx) //nolint:errcheck

	bootcamps := make([]BootcampDocument, 0)
	if err = cursor.All(ctx, &bootcamps); err != nil {
		return nil, cerror.DependencyError("error occurred while decode bootcamps within radius").
			WithFields(zap.Error(err))
	}

	return bootcamps, nil
}

func (r *repository) CountBootcampsWithUser(ctx context.Context, userId string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{{Key: "user", Value: userId}})
	if err != nil {
		return 0, cerror.DependencyError("error occurred while count bootcamps of user").
			WithFields(zap.Error(err))
	}

	return count, nil
}

func (r *repository) UpdateBootcampById(
	ctx context.Context, bootcampId string, bootcamp *UpdateBootcampDocument,
) (*BootcampDocument, error) {
	var updated BootcampDocument
	filter := bson.D{{Key: "_id", Value: bootcampId}}
	update := bson.D{{Key: "$set", Value: bootcamp}}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("bootcamp", bootcampId)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, cerror.ValidationError(duplicateNameMessage).
				WithFields(zap.String("name", bootcamp.Name))
		}

		return nil, cerror.DependencyError("error occurred while update bootcamp").
			WithFields(zap.Error(err))
	}

	return &updated, nil
}

// SetAverage stores a recomputed average, or removes it when average is nil.
func (r *repository) SetAverage(ctx context.Context, bootcampId, field string, average *float64) error {
	filter := bson.D{{Key: "_id", Value: bootcampId}}
	update := bson.D{{Key: "$unset", Value: bson.D{{Key: field, Value: ""}}}}
	if average != nil {
		update = bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: *average}}}}
	}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return cerror.DependencyError("error occurred while set bootcamp average").
			WithFields(zap.Error(err), zap.String("field", field))
	}

	return nil
}

func (r *repository) DeleteBootcampById(ctx context.Context, bootcampId string) error {
	filter := bson.D{{Key: "_id", Value: bootcampId}}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return cerror.DependencyError("error occurred while delete bootcamp").
			WithFields(zap.Error(err))
	}

	if result.DeletedCount == 0 {
		return cerror.NotFound("bootcamp", bootcampId)
	}

	return nil
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		},
		{
			Keys: bson.D{{Key: "user", Value: 1}},
		},
	})
	if err != nil {
		return cerror.DependencyError("error occurred while create bootcamp indexes").
			WithFields(zap.Error(err))
	}

	return nil
}
