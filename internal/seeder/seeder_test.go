//go:build integration

package seeder

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-api/internal/bootcamp"
	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/mongodb"
)

const (
	testBootcampId = "5d713995b721c3bb38c1f5d0"
	testUsers      = `[
		{"_id": "5d7a514b5d2c12c7449be042", "name": "Admin Account", "email": "admin@gmail.com", "role": "admin", "password": "123456"},
		{"_id": "5c8a1d5b0190b214360dc031", "name": "John Doe", "email": "john@gmail.com", "role": "publisher", "password": "123456"}
	]`
	testBootcamps = `[
		{
			"_id": "5d713995b721c3bb38c1f5d0",
			"user": "5c8a1d5b0190b214360dc031",
			"name": "Devworks Bootcamp",
			"description": "Devworks is a full stack JavaScript Bootcamp",
			"location": {"type": "Point", "coordinates": [-71.104028, 42.350846], "zipcode": "02118"},
			"careers": ["Web Development", "UI/UX", "Business"],
			"housing": true
		}
	]`
	testCourses = `[
		{"_id": "5d725a4a7b292f5f8ceff789", "title": "Front End Web Development", "description": "html", "weeks": 8, "tuition": 8000, "minimumSkill": "beginner", "bootcamp": "5d713995b721c3bb38c1f5d0", "user": "5c8a1d5b0190b214360dc031"},
		{"_id": "5d725c84c4ded7bcb480eaa0", "title": "Full Stack Web Development", "description": "node", "weeks": 12, "tuition": 10001, "minimumSkill": "intermediate", "bootcamp": "5d713995b721c3bb38c1f5d0", "user": "5c8a1d5b0190b214360dc031"}
	]`
	testReviews = `[
		{"_id": "5d7a514b5d2c12c7449be020", "title": "Learned a ton!", "text": "great", "rating": 8, "bootcamp": "5d713995b721c3bb38c1f5d0", "user": "5d7a514b5d2c12c7449be042"},
		{"_id": "5d7a514b5d2c12c7449be021", "title": "Great bootcamp", "text": "fine", "rating": 10, "bootcamp": "5d713995b721c3bb38c1f5d0", "user": "5c8a1d5b0190b214360dc031"}
	]`
)

func TestSeeder(t *testing.T) {
	ctx := context.Background()
	mongoClient, mongodbConfig := mongodb.SetupTestClient(t, ctx)

	dataDir := fstest.MapFS{
		UsersFile:     {Data: []byte(testUsers)},
		BootcampsFile: {Data: []byte(testBootcamps)},
		CoursesFile:   {Data: []byte(testCourses)},
		ReviewsFile:   {Data: []byte(testReviews)},
	}

	dataSeeder := NewSeeder(mongoClient, mongodbConfig, 4)
	require.NoError(t, dataSeeder.Import(ctx, dataDir))

	userRepository := user.NewRepository(mongoClient, mongodbConfig)
	bootcampRepository := bootcamp.NewRepository(mongoClient, mongodbConfig)

	t.Run("passwords are hashed", func(t *testing.T) {
		admin, err := userRepository.FindUserWithEmail(ctx, "admin@gmail.com")

		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, admin.Role)
		assert.NotEqual(t, "123456", admin.Password)
		assert.True(t, user.MatchPassword(admin.Password, "123456"))
	})

	t.Run("bootcamp defaults and averages", func(t *testing.T) {
		found, err := bootcampRepository.FindBootcampWithId(ctx, testBootcampId)

		require.NoError(t, err)
		assert.Equal(t, "devworks-bootcamp", found.Slug)
		assert.Equal(t, bootcamp.DefaultPhoto, found.Photo)
		require.NotNil(t, found.AverageCost)
		assert.Equal(t, 9010.0, *found.AverageCost)
		require.NotNil(t, found.AverageRating)
		assert.Equal(t, 9.0, *found.AverageRating)
	})

	t.Run("malformed fixture should return validation error", func(t *testing.T) {
		err := dataSeeder.Import(ctx, fstest.MapFS{UsersFile: {Data: []byte("{")}})

		assert.True(t, cerror.Is(err, cerror.KindValidation))
	})

	t.Run("destroy drops every collection", func(t *testing.T) {
		require.NoError(t, dataSeeder.Destroy(ctx))

		_, err := bootcampRepository.FindBootcampWithId(ctx, testBootcampId)
		assert.True(t, cerror.Is(err, cerror.KindNotFound))

		_, err = userRepository.FindUserWithEmail(ctx, "admin@gmail.com")
		assert.True(t, cerror.Is(err, cerror.KindNotFound))
	})
}
