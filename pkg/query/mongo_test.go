//go:build unit

package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bootcamp-api/pkg/cerror"
)

type fakeCollection struct {
	documents []interface{}
	total     int64
	err       error

	pipeline interface{}
	filter   interface{}
}

func (f *fakeCollection) Aggregate(_ context.Context, pipeline interface{}, _ ...*options.AggregateOptions) (*mongo.Cursor, error) {
	f.pipeline = pipeline
	if f.err != nil {
		return nil, f.err
	}

	return mongo.NewCursorFromDocuments(f.documents, nil, nil)
}

func (f *fakeCollection) CountDocuments(_ context.Context, filter interface{}, _ ...*options.CountOptions) (int64, error) {
	f.filter = filter

	return f.total, nil
}

type listedBootcamp struct {
	Name string `bson:"name"`
}

func TestMongoFilter(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, bson.D{}, MongoFilter(&Descriptor{}, nil))
	})

	t.Run("conditions on one field are merged", func(t *testing.T) {
		filter := MongoFilter(&Descriptor{Filters: []Filter{
			{Field: "averageCost", Operator: OperatorGte, Value: int64(5000)},
			{Field: "averageCost", Operator: OperatorLte, Value: int64(10000)},
		}}, nil)

		assert.Equal(t, bson.D{{Key: "averageCost", Value: bson.D{
			{Key: "$gte", Value: int64(5000)},
			{Key: "$lte", Value: int64(10000)},
		}}}, filter)
	})

	t.Run("scope is combined with filters", func(t *testing.T) {
		scope := bson.D{{Key: "bootcamp", Value: "b1"}}
		filter := MongoFilter(&Descriptor{Filters: []Filter{
			{Field: "tuition", Operator: OperatorLt, Value: int64(9000)},
		}}, scope)

		assert.Equal(t, bson.D{{Key: "$and", Value: bson.A{
			scope,
			bson.D{{Key: "tuition", Value: bson.D{{Key: "$lt", Value: int64(9000)}}}},
		}}}, filter)
	})

	t.Run("scope only", func(t *testing.T) {
		scope := bson.D{{Key: "bootcamp", Value: "b1"}}

		assert.Equal(t, scope, MongoFilter(&Descriptor{}, scope))
	})
}

func TestMongoProjection(t *testing.T) {
	t.Run("no select and nothing omitted", func(t *testing.T) {
		assert.Nil(t, MongoProjection(nil, nil, nil))
	})

	t.Run("select drops omitted fields", func(t *testing.T) {
		projection := MongoProjection([]string{"name", "password"}, []string{"password"}, []string{"courses"})

		assert.Equal(t, bson.D{{Key: "name", Value: 1}, {Key: "courses", Value: 1}}, projection)
	})

	t.Run("select of omitted fields only falls back to exclusion", func(t *testing.T) {
		projection := MongoProjection([]string{"password"}, []string{"password"}, nil)

		assert.Equal(t, bson.D{{Key: "password", Value: 0}}, projection)
	})
}

func TestPipeline(t *testing.T) {
	descriptor, err := Parse(map[string][]string{
		"difficulty[gt]": {"5"},
		"select":         {"name,careers"},
		"page":           {"2"},
		"limit":          {"10"},
	})
	require.NoError(t, err)

	pipeline := Pipeline(descriptor, Options{
		Populate: []Populate{{LocalField: "bootcamp", From: "bootcamps", As: "bootcampDetail", Select: []string{"name"}}},
	})

	require.Len(t, pipeline, 7)
	assert.Equal(t, bson.D{{Key: "$match", Value: bson.D{{Key: "difficulty", Value: bson.D{{Key: "$gt", Value: int64(5)}}}}}}, pipeline[0])
	assert.Equal(t, bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}}, pipeline[1])
	assert.Equal(t, bson.D{{Key: "$skip", Value: int64(10)}}, pipeline[2])
	assert.Equal(t, bson.D{{Key: "$limit", Value: int64(10)}}, pipeline[3])
	assert.Equal(t, "$lookup", pipeline[4][0].Key)
	assert.Equal(t, "$unwind", pipeline[5][0].Key)
	assert.Equal(t, bson.D{{Key: "$project", Value: bson.D{
		{Key: "name", Value: 1},
		{Key: "careers", Value: 1},
		{Key: "bootcampDetail", Value: 1},
	}}}, pipeline[6])
}

func TestExecute(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		collection := &fakeCollection{
			documents: []interface{}{bson.D{{Key: "name", Value: "Devworks"}}, bson.D{{Key: "name", Value: "ModernTech"}}},
			total:     23,
		}
		descriptor := &Descriptor{Page: 1, Limit: 2, Sort: []SortKey{{Field: "createdAt", Direction: Descending}}}

		result, err := Execute[listedBootcamp](context.Background(), collection, descriptor, Options{})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, []listedBootcamp{{Name: "Devworks"}, {Name: "ModernTech"}}, result.Data)
		assert.Equal(t, int64(23), result.Pagination.Total)
		assert.Equal(t, &PageRef{Page: 2, Limit: 2}, result.Pagination.Next)
		assert.Equal(t, bson.D{}, collection.filter)
	})

	t.Run("empty result keeps an empty data list", func(t *testing.T) {
		collection := &fakeCollection{}

		result, err := Execute[listedBootcamp](context.Background(), collection, &Descriptor{Page: 1, Limit: 25}, Options{})

		require.NoError(t, err)
		assert.NotNil(t, result.Data)
		assert.Equal(t, 0, result.Count)
	})

	t.Run("filter on omitted field should return validation error", func(t *testing.T) {
		collection := &fakeCollection{}
		descriptor := &Descriptor{
			Page:    1,
			Limit:   25,
			Filters: []Filter{{Field: "password", Operator: OperatorGt, Value: "$2a"}},
		}

		result, err := Execute[listedBootcamp](context.Background(), collection, descriptor, Options{Omit: []string{"password"}})

		assert.Nil(t, result)
		assert.True(t, cerror.Is(err, cerror.KindValidation))
		assert.Nil(t, collection.pipeline)
	})

	t.Run("aggregate failure", func(t *testing.T) {
		collection := &fakeCollection{err: errors.New("connection reset")}

		result, err := Execute[listedBootcamp](context.Background(), collection, &Descriptor{Page: 1, Limit: 25}, Options{})

		assert.Nil(t, result)
		assert.True(t, cerror.Is(err, cerror.KindDependency))
	})
}
