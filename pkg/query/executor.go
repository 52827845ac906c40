package query

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"bootcamp-api/pkg/cerror"
)

// Collection is the part of *mongo.Collection the executor needs.
type Collection interface {
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type PageRef struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

type Pagination struct {
	Total int64    `json:"total"`
	Next  *PageRef `json:"next,omitempty"`
	Prev  *PageRef `json:"prev,omitempty"`
}

type Result[T any] struct {
	Success    bool       `json:"success"`
	Count      int        `json:"count"`
	Pagination Pagination `json:"pagination"`
	Data       []T        `json:"data"`
}

func NewPagination(descriptor *Descriptor, total int64) Pagination {
	pagination := Pagination{Total: total}
	if descriptor.Skip()+descriptor.Limit < total {
		pagination.Next = &PageRef{Page: descriptor.Page + 1, Limit: descriptor.Limit}
	}
	if descriptor.Page > 1 {
		pagination.Prev = &PageRef{Page: descriptor.Page - 1, Limit: descriptor.Limit}
	}

	return pagination
}

func Execute[T any](ctx context.Context, collection Collection, descriptor *Descriptor, opts Options) (*Result[T], error) {
	if field, ok := descriptor.References(opts.Omit); ok {
		return nil, cerror.ValidationError(fmt.Sprintf("field %s cannot be queried", field))
	}

	cursor, err := collection.Aggregate(ctx, Pipeline(descriptor, opts))
	if err != nil {
		return nil, cerror.DependencyError("error occurred while run listing query").
			WithFields(zap.Error(err))
	}
	defer cursor.Close(ctx) //nolint:errcheck

	data := make([]T, 0)
	if err = cursor.All(ctx, &data); err != nil {
		return nil, cerror.DependencyError("error occurred while decode listing query").
			WithFields(zap.Error(err))
	}

	total, err := collection.CountDocuments(ctx, MongoFilter(descriptor, opts.Scope))
	if err != nil {
		return nil, cerror.DependencyError("error occurred while count listing query").
			WithFields(zap.Error(err))
	}

	return &Result[T]{
		Success:    true,
		Count:      len(data),
		Pagination: NewPagination(descriptor, total),
		Data:       data,
	}, nil
}
