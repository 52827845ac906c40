package query

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var mongoOperators = map[Operator]string{
	OperatorEq:  "$eq",
	OperatorGt:  "$gt",
	OperatorGte: "$gte",
	OperatorLt:  "$lt",
	OperatorLte: "$lte",
	OperatorIn:  "$in",
}

// Populate attaches documents of another collection to every result. One to
// one relations are unwound into a single embedded document stored under As.
type Populate struct {
	LocalField   string
	From         string
	ForeignField string
	As           string
	Select       []string
	Many         bool
}

type Options struct {
	Scope    bson.D
	Omit     []string
	Populate []Populate
}

// MongoFilter translates the descriptor filters and the scope into a match document.
func MongoFilter(descriptor *Descriptor, scope bson.D) bson.D {
	var conditions bson.A
	if len(scope) > 0 {
		conditions = append(conditions, scope)
	}

	var current bson.D
	var currentField string
	flush := func() {
		if currentField != "" {
			conditions = append(conditions, bson.D{{Key: currentField, Value: current}})
		}
	}
	for _, filter := range descriptor.Filters {
		if filter.Field != currentField {
			flush()
			currentField = filter.Field
			current = bson.D{}
		}
		current = append(current, bson.E{Key: mongoOperators[filter.Operator], Value: filter.Value})
	}
	flush()

	switch len(conditions) {
	case 0:
		return bson.D{}
	case 1:
		return conditions[0].(bson.D)
	default:
		return bson.D{{Key: "$and", Value: conditions}}
	}
}

func MongoSort(descriptor *Descriptor) bson.D {
	sortDocument := bson.D{}
	for _, key := range descriptor.Sort {
		sortDocument = append(sortDocument, bson.E{Key: key.Field, Value: int(key.Direction)})
	}

	return sortDocument
}

// MongoProjection returns nil when every field is returned.
func MongoProjection(selectFields, omit, keep []string) bson.D {
	omitted := make(map[string]bool, len(omit))
	for _, field := range omit {
		omitted[field] = true
	}

	projection := bson.D{}
	for _, field := range selectFields {
		if !omitted[field] {
			projection = append(projection, bson.E{Key: field, Value: 1})
		}
	}

	if len(projection) > 0 {
		for _, field := range keep {
			projection = append(projection, bson.E{Key: field, Value: 1})
		}
		return projection
	}

	if len(omit) == 0 {
		return nil
	}

	for _, field := range omit {
		projection = append(projection, bson.E{Key: field, Value: 0})
	}

	return projection
}

func Pipeline(descriptor *Descriptor, opts Options) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: MongoFilter(descriptor, opts.Scope)}},
		{{Key: "$sort", Value: MongoSort(descriptor)}},
		{{Key: "$skip", Value: descriptor.Skip()}},
		{{Key: "$limit", Value: descriptor.Limit}},
	}

	populatedFields := make([]string, 0, len(opts.Populate))
	for _, populate := range opts.Populate {
		pipeline = append(pipeline, lookupStages(populate)...)
		populatedFields = append(populatedFields, populate.As)
	}

	projection := MongoProjection(descriptor.Select, opts.Omit, populatedFields)
	if projection != nil {
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: projection}})
	}

	return pipeline
}

func lookupStages(populate Populate) []bson.D {
	foreignField := populate.ForeignField
	if foreignField == "" {
		foreignField = "_id"
	}

	subPipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
			{Key: "$eq", Value: bson.A{"$" + foreignField, "$$ref"}},
		}}}}},
	}
	if projection := MongoProjection(populate.Select, nil, nil); projection != nil {
		subPipeline = append(subPipeline, bson.D{{Key: "$project", Value: projection}})
	}

	stages := []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: populate.From},
			{Key: "let", Value: bson.D{{Key: "ref", Value: "$" + populate.LocalField}}},
			{Key: "pipeline", Value: subPipeline},
			{Key: "as", Value: populate.As},
		}}},
	}

	if !populate.Many {
		stages = append(stages, bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + populate.As},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}})
	}

	return stages
}
