package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bootcamp-api/pkg/config"
)

func NewClient(ctx context.Context, mongodbConfig *config.MongodbConfig) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(mongodbConfig.Uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	if mongodbConfig.Username != "" {
		clientOptions.SetAuth(options.Credential{
			Username: mongodbConfig.Username,
			Password: mongodbConfig.Password,
		})
	}

	mongodbClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	err = mongodbClient.Ping(ctx, readpref.Primary())
	if err != nil {
		_ = mongodbClient.Disconnect(ctx)
		return nil, err
	}

	return mongodbClient, nil
}
