package seeder

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"bootcamp-api/internal/bootcamp"
	"bootcamp-api/internal/course"
	"bootcamp-api/internal/review"
	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/config"
	"bootcamp-api/pkg/logger"
)

const (
	UsersFile     = "users.json"
	BootcampsFile = "bootcamps.json"
	CoursesFile   = "courses.json"
	ReviewsFile   = "reviews.json"
)

// userFixture carries the plain password that UserDocument never decodes.
type userFixture struct {
	user.UserDocument
	Password string `json:"password"`
}

type Seeder struct {
	database           *mongo.Database
	collections        []string
	userRepository     user.Repository
	bootcampRepository bootcamp.Repository
	courseRepository   course.Repository
	reviewRepository   review.Repository
	bcryptCost         int
}

func NewSeeder(mongoClient *mongo.Client, mongodbConfig *config.MongodbConfig, bcryptCost int) *Seeder {
	return &Seeder{
		database: mongoClient.Database(mongodbConfig.Database),
		collections: []string{
			mongodbConfig.Collections[config.MongodbUserCollection],
			mongodbConfig.Collections[config.MongodbBootcampCollection],
			mongodbConfig.Collections[config.MongodbCourseCollection],
			mongodbConfig.Collections[config.MongodbReviewCollection],
		},
		userRepository:     user.NewRepository(mongoClient, mongodbConfig),
		bootcampRepository: bootcamp.NewRepository(mongoClient, mongodbConfig),
		courseRepository:   course.NewRepository(mongoClient, mongodbConfig),
		reviewRepository:   review.NewRepository(mongoClient, mongodbConfig),
		bcryptCost:         bcryptCost,
	}
}

// Import loads the fixtures of dataDir in dependency order and recomputes
// the bootcamp averages once every course and review is stored.
func (s *Seeder) Import(ctx context.Context, dataDir fs.FS) error {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	for _, ensureIndexes := range []func(context.Context) error{
		s.userRepository.EnsureIndexes,
		s.bootcampRepository.EnsureIndexes,
		s.courseRepository.EnsureIndexes,
		s.reviewRepository.EnsureIndexes,
	} {
		err := ensureIndexes(ctx)
		if err != nil {
			return err
		}
	}

	var users []userFixture
	err := readFixture(dataDir, UsersFile, &users)
	if err != nil {
		return err
	}
	for i := range users {
		document := users[i].UserDocument
		document.Password, err = user.HashPassword(users[i].Password, s.bcryptCost)
		if err != nil {
			return err
		}
		if document.Role == "" {
			document.Role = user.RoleUser
		}
		if document.CreatedAt.IsZero() {
			document.CreatedAt = now
		}

		err = s.userRepository.InsertUser(ctx, &document)
		if err != nil {
			return err
		}
	}

	var bootcamps []bootcamp.BootcampDocument
	err = readFixture(dataDir, BootcampsFile, &bootcamps)
	if err != nil {
		return err
	}
	for i := range bootcamps {
		document := &bootcamps[i]
		document.Slug = bootcamp.Slugify(document.Name)
		document.AverageCost = nil
		document.AverageRating = nil
		document.Courses = nil
		if document.Photo == "" {
			document.Photo = bootcamp.DefaultPhoto
		}
		if document.CreatedAt.IsZero() {
			document.CreatedAt = now
		}

		err = s.bootcampRepository.InsertBootcamp(ctx, document)
		if err != nil {
			return err
		}
	}

	var courses []course.CourseDocument
	err = readFixture(dataDir, CoursesFile, &courses)
	if err != nil {
		return err
	}
	for i := range courses {
		document := &courses[i]
		document.BootcampDetail = nil
		if document.CreatedAt.IsZero() {
			document.CreatedAt = now
		}

		err = s.courseRepository.InsertCourse(ctx, document)
		if err != nil {
			return err
		}
	}

	var reviews []review.ReviewDocument
	err = readFixture(dataDir, ReviewsFile, &reviews)
	if err != nil {
		return err
	}
	for i := range reviews {
		document := &reviews[i]
		document.BootcampDetail = nil
		if document.CreatedAt.IsZero() {
			document.CreatedAt = now
		}

		err = s.reviewRepository.InsertReview(ctx, document)
		if err != nil {
			return err
		}
	}

	for i := range bootcamps {
		err = s.refreshAverages(ctx, bootcamps[i].Id)
		if err != nil {
			return err
		}
	}

	log.Infow(
		"data imported",
		zap.Int("users", len(users)),
		zap.Int("bootcamps", len(bootcamps)),
		zap.Int("courses", len(courses)),
		zap.Int("reviews", len(reviews)),
	)
	return nil
}

// Destroy drops every collection the api owns.
func (s *Seeder) Destroy(ctx context.Context) error {
	for _, collection := range s.collections {
		err := s.database.Collection(collection).Drop(ctx)
		if err != nil {
			return cerror.DependencyError("error occurred while drop collection").
				WithFields(
					zap.String("collection", collection),
					zap.Error(err),
				)
		}
	}

	logger.FromContext(ctx).Infow("data destroyed", zap.Strings("collections", s.collections))
	return nil
}

func (s *Seeder) refreshAverages(ctx context.Context, bootcampId string) error {
	averageTuition, err := s.courseRepository.AverageTuition(ctx, bootcampId)
	if err != nil {
		return err
	}
	if averageTuition != nil {
		rounded := course.RoundAverageCost(*averageTuition)
		averageTuition = &rounded
	}

	err = s.bootcampRepository.SetAverage(ctx, bootcampId, bootcamp.AverageCostField, averageTuition)
	if err != nil {
		return err
	}

	averageRating, err := s.reviewRepository.AverageRating(ctx, bootcampId)
	if err != nil {
		return err
	}

	return s.bootcampRepository.SetAverage(ctx, bootcampId, bootcamp.AverageRatingField, averageRating)
}

// readFixture decodes name into target. A missing file leaves target empty.
func readFixture(dataDir fs.FS, name string, target interface{}) error {
	content, err := fs.ReadFile(dataDir, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return cerror.DependencyError("error occurred while read fixture").
			WithFields(
				zap.String("file", name),
				zap.Error(err),
			)
	}

	err = json.Unmarshal(content, target)
	if err != nil {
		return cerror.ValidationError("fixture is malformed").
			WithFields(
				zap.String("file", name),
				zap.Error(err),
			)
	}

	return nil
}
