package course

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=course

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

type Repository interface {
	InsertCourse(ctx context.Context, course *CourseDocument) error
	FindCourseWithId(ctx context.Context, courseId string) (*CourseDocument, error)
	FindCourses(ctx context.Context, bootcampId string, descriptor *query.Descriptor) (*query.Result[CourseDocument], error)
	UpdateCourseById(ctx context.Context, courseId string, course *UpdateCourseDocument) (*CourseDocument, error)
	DeleteCourseById(ctx context.Context, courseId string) error
	DeleteByBootcamp(ctx context.Context, bootcampId string) error
	AverageTuition(ctx context.Context, bootcampId string) (*float64, error)
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
			Collection(mongodbConfig.Collections[config.MongodbCourseCollection]),
		bootcampCollection: mongodbConfig.Collections[config.MongodbBootcampCollection],
	}
}

func (r *repository) InsertCourse(ctx context.Context, course *CourseDocument) error {
	_, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return cerror.DependencyError("error occurred while insert course").
			WithFields(zap.Error(err))
	}

	return nil
}

func (r *repository) FindCourseWithId(ctx context.Context, courseId string) (*CourseDocument, error) {
	var course CourseDocument
	filter := bson.D{{Key: "_id", Value: courseId}}
	err := r.collection.FindOne(ctx, filter).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("course", courseId)
		}

		return nil, cerror.DependencyError("error occurred while find course with id").
			WithFields(zap.Error(err))
	}

	return &course, nil
}

// FindCourses lists every course, or only the courses of bootcampId when set.
func (r *repository) FindCourses(
	ctx context.Context, bootcampId string, descriptor *query.Descriptor,
) (*query.Result[CourseDocument], error) {
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

	return query.Execute[CourseDocument](ctx, r.collection, descriptor, opts)
}

func (r *repository) UpdateCourseById(
	ctx context.Context, courseId string, course *UpdateCourseDocument,
) (*CourseDocument, error) {
	var updated CourseDocument
	filter := bson.D{{Key: "_id", Value: courseId}}
	update := bson.D{{Key: "$set", Value: course}}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("course", courseId)
		}

		return nil, cerror.DependencyError("error occurred while update course").
			WithFields(zap.Error(err))
	}

	return &updated, nil
}

func (r *repository) DeleteCourseById(ctx context.Context, courseId string) error {
	filter := bson.D{{Key: "_id", Value: courseId}}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return cerror.DependencyError("error occurred while delete course").
			WithFields(zap.Error(err))
	}

	if result.DeletedCount == 0 {
		return cerror.NotFound("course", courseId)
	}

	return nil
}

func (r *repository) DeleteByBootcamp(ctx context.Context, bootcampId string) error {
	_, err := r.collection.DeleteMany(ctx, bson.D{{Key: "bootcamp", Value: bootcampId}})
	if err != nil {
		return cerror.DependencyError("error occurred while delete courses of bootcamp").
			WithFields(zap.Error(err), zap.String("bootcampId", bootcampId))
	}

	return nil
}

// AverageTuition returns nil when the bootcamp has no courses.
func (r *repository) AverageTuition(ctx context.Context, bootcampId string) (*float64, error) {
	return average(ctx, r.collection, bootcampId, "tuition")
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "bootcamp", Value: 1}},
		},
	})
	if err != nil {
		return cerror.DependencyError("error occurred while create course indexes").
			WithFields(zap.Error(err))
	}

	return nil
}

func average(ctx context.Context, collection *mongo.Collection, bootcampId, field string) (*float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "bootcamp", Value: bootcampId}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$bootcamp"},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$" + field}}},
		}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, cerror.DependencyError("error occurred while aggregate average").
			WithFields(zap.Error(err), zap.String("field", field))
	}
	defer cursor.Close(ctx) //nolint:errcheck

	var results []struct {
		Average *float64 `bson:"average"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, cerror.DependencyError("error occurred while decode average").
			WithFields(zap.Error(err), zap.String("field", field))
	}

	if len(results) == 0 {
		return nil, nil
	}

	return results[0].Average, nil
}
