//go:build integration

package bootcamp

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/config"
	"bootcamp-api/pkg/geo"
	"bootcamp-api/pkg/mongodb"
	"bootcamp-api/pkg/query"
)

var boston = geo.Point{Latitude: 42.3601, Longitude: -71.0589}

func newBootcampDocument(name, userId string, point geo.Point) *BootcampDocument {
	return &BootcampDocument{
		Id:          uuid.New().String(),
		Name:        name,
		Slug:        Slugify(name),
		Description: "description",
		Location:    &Location{GeoJSON: geo.NewGeoJSON(point), City: "Boston"},
		Careers:     []string{"Web Development"},
		Photo:       DefaultPhoto,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
		User:        userId,
	}
}

// pointAt returns a point due north of boston at the given distance.
func pointAt(distanceMiles float64) geo.Point {
	return geo.Point{
		Latitude:  boston.Latitude + distanceMiles/geo.EarthRadiusMiles*180/math.Pi,
		Longitude: boston.Longitude,
	}
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	mongoClient, mongodbConfig := mongodb.SetupTestClient(t, ctx)

	bootcampRepository := NewRepository(mongoClient, mongodbConfig)
	require.NoError(t, bootcampRepository.EnsureIndexes(ctx))

	inside := newBootcampDocument("Inside Bootcamp", "owner-1", pointAt(9.9))
	outside := newBootcampDocument("Outside Bootcamp", "owner-2", pointAt(10.1))
	require.NoError(t, bootcampRepository.InsertBootcamp(ctx, inside))
	require.NoError(t, bootcampRepository.InsertBootcamp(ctx, outside))

	t.Run("duplicate name should return validation error", func(t *testing.T) {
		err := bootcampRepository.InsertBootcamp(ctx, newBootcampDocument("Inside Bootcamp", "owner-3", boston))

		assert.True(t, cerror.Is(err, cerror.KindValidation))
	})

	t.Run("find within radius", func(t *testing.T) {
		region, err := geo.NewRegion(boston, 10)
		require.NoError(t, err)

		found, err := bootcampRepository.FindBootcampsWithin(ctx, region)

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, inside.Id, found[0].Id)
		assert.True(t, region.Contains(found[0].Location.Point()))
	})

	t.Run("count bootcamps of user", func(t *testing.T) {
		count, err := bootcampRepository.CountBootcampsWithUser(ctx, "owner-1")

		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("find bootcamps populates courses", func(t *testing.T) {
		courses := mongoClient.
			Database(mongodbConfig.Database).
			Collection(mongodbConfig.Collections[config.MongodbCourseCollection])
		_, err := courses.InsertOne(ctx, bson.D{
			{Key: "_id", Value: uuid.New().String()},
			{Key: "title", Value: "Front End Web Development"},
			{Key: "weeks", Value: 8},
			{Key: "tuition", Value: 8000},
			{Key: "minimumSkill", Value: "beginner"},
			{Key: "bootcamp", Value: inside.Id},
		})
		require.NoError(t, err)

		descriptor, err := query.Parse(map[string][]string{"select": {"name"}, "sort": {"name"}})
		require.NoError(t, err)

		result, err := bootcampRepository.FindBootcamps(ctx, descriptor)

		require.NoError(t, err)
		require.Len(t, result.Data, 2)
		assert.Equal(t, int64(2), result.Pagination.Total)
		assert.Equal(t, inside.Name, result.Data[0].Name)
		assert.Empty(t, result.Data[0].Description)
		require.Len(t, result.Data[0].Courses, 1)
		assert.Equal(t, "Front End Web Development", result.Data[0].Courses[0].Title)
		assert.Equal(t, 8, result.Data[0].Courses[0].Weeks)
		assert.Empty(t, result.Data[1].Courses)
	})

	t.Run("set and unset average", func(t *testing.T) {
		average := 8000.0
		require.NoError(t, bootcampRepository.SetAverage(ctx, inside.Id, AverageCostField, &average))

		found, err := bootcampRepository.FindBootcampWithId(ctx, inside.Id)
		require.NoError(t, err)
		require.NotNil(t, found.AverageCost)
		assert.Equal(t, average, *found.AverageCost)

		require.NoError(t, bootcampRepository.SetAverage(ctx, inside.Id, AverageCostField, nil))

		found, err = bootcampRepository.FindBootcampWithId(ctx, inside.Id)
		require.NoError(t, err)
		assert.Nil(t, found.AverageCost)
	})

	t.Run("update bootcamp", func(t *testing.T) {
		updated, err := bootcampRepository.UpdateBootcampById(ctx, outside.Id, &UpdateBootcampDocument{
			Photo: "photo_" + outside.Id + ".jpg",
		})

		require.NoError(t, err)
		assert.Equal(t, "photo_"+outside.Id+".jpg", updated.Photo)
		assert.Equal(t, outside.Name, updated.Name)
	})

	t.Run("delete bootcamp", func(t *testing.T) {
		require.NoError(t, bootcampRepository.DeleteBootcampById(ctx, outside.Id))

		_, err := bootcampRepository.FindBootcampWithId(ctx, outside.Id)
		assert.True(t, cerror.Is(err, cerror.KindNotFound))

		err = bootcampRepository.DeleteBootcampById(ctx, outside.Id)
		assert.True(t, cerror.Is(err, cerror.KindNotFound))
	})
}
