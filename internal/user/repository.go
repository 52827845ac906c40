package user

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=user

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/config"
	"bootcamp-api/pkg/query"
)

type Repository interface {
	InsertUser(ctx context.Context, user *UserDocument) error
	FindUserWithId(ctx context.Context, userId string) (*UserDocument, error)
	FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error)
	FindUsers(ctx context.Context, descriptor *query.Descriptor) (*query.Result[UserDocument], error)
	UpdateUserById(ctx context.Context, userId string, user *UpdateUserDocument) (*UserDocument, error)
	DeleteUserById(ctx context.Context, userId string) error
	SetResetPasswordToken(ctx context.Context, userId, hashedToken string, expiresAt time.Time) error
	ClearResetPasswordToken(ctx context.Context, userId string) error
	ResetPasswordWithToken(ctx context.Context, hashedToken, hashedPassword string, now time.Time) (*UserDocument, error)
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	collection *mongo.Collection
}

func NewRepository(mongoClient *mongo.Client, mongodbConfig *config.MongodbConfig) Repository {
	return &repository{
		collection: mongoClient.
			Database(mongodbConfig.Database).
			Collection(mongodbConfig.Collections[config.MongodbUserCollection]),
	}
}

func (r *repository) InsertUser(ctx context.Context, user *UserDocument) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return cerror.DuplicateEmail().WithFields(zap.String("email", user.Email))
		}

		return cerror.DependencyError("error occurred while insert user").
			WithFields(zap.Error(err))
	}

	return nil
}

func (r *repository) FindUserWithId(ctx context.Context, userId string) (*UserDocument, error) {
	var user UserDocument
	filter := bson.D{{Key: "_id", Value: userId}}
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("user", userId)
		}

		return nil, cerror.DependencyError("error occurred while find user with id").
			WithFields(zap.Error(err))
	}

	return &user, nil
}

func (r *repository) FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error) {
	var user UserDocument
	filter := bson.D{{Key: "email", Value: email}}
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("user", email)
		}

		return nil, cerror.DependencyError("error occurred while find user with email").
			WithFields(zap.Error(err))
	}

	return &user, nil
}

func (r *repository) FindUsers(ctx context.Context, descriptor *query.Descriptor) (*query.Result[UserDocument], error) {
	return query.Execute[UserDocument](ctx, r.collection, descriptor, query.Options{
		Omit: PrivateFields,
	})
}

func (r *repository) UpdateUserById(ctx context.Context, userId string, user *UpdateUserDocument) (*UserDocument, error) {
	var updated UserDocument
	filter := bson.D{{Key: "_id", Value: userId}}
	update := bson.D{{Key: "$set", Value: user}}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NotFound("user", userId)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, cerror.DuplicateEmail().WithFields(zap.String("email", user.Email))
		}

		return nil, cerror.DependencyError("error occurred while update user").
			WithFields(zap.Error(err))
	}

	return &updated, nil
}

func (r *repository) DeleteUserById(ctx context.Context, userId string) error {
	filter := bson.D{{Key: "_id", Value: userId}}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return cerror.DependencyError("error occurred while delete user").
			WithFields(zap.Error(err))
	}

	if result.DeletedCount == 0 {
		return cerror.NotFound("user", userId)
	}

	return nil
}

func (r *repository) SetResetPasswordToken(ctx context.Context, userId, hashedToken string, expiresAt time.Time) error {
	filter := bson.D{{Key: "_id", Value: userId}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "resetPasswordToken", Value: hashedToken},
		{Key: "resetPasswordExpire", Value: expiresAt},
	}}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return cerror.DependencyError("error occurred while set reset password token").
			WithFields(zap.Error(err))
	}

	if result.MatchedCount == 0 {
		return cerror.NotFound("user", userId)
	}

	return nil
}

func (r *repository) ClearResetPasswordToken(ctx context.Context, userId string) error {
	filter := bson.D{{Key: "_id", Value: userId}}
	_, err := r.collection.UpdateOne(ctx, filter, unsetResetPasswordToken())
	if err != nil {
		return cerror.DependencyError("error occurred while clear reset password token").
			WithFields(zap.Error(err))
	}

	return nil
}

// ResetPasswordWithToken consumes a live reset token and stores the new
// password in one atomic update, so a token can be used only once.
func (r *repository) ResetPasswordWithToken(
	ctx context.Context, hashedToken, hashedPassword string, now time.Time,
) (*UserDocument, error) {
	filter := bson.D{
		{Key: "resetPasswordToken", Value: hashedToken},
		{Key: "resetPasswordExpire", Value: bson.D{{Key: "$gt", Value: now}}},
	}
	update := append(unsetResetPasswordToken(), bson.E{Key: "$set", Value: bson.D{
		{Key: "password", Value: hashedPassword},
	}})
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user UserDocument
	err := r.collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.InvalidOrExpiredToken()
		}

		return nil, cerror.DependencyError("error occurred while reset password").
			WithFields(zap.Error(err))
	}

	return &user, nil
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "resetPasswordToken", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})
	if err != nil {
		return cerror.DependencyError("error occurred while create user indexes").
			WithFields(zap.Error(err))
	}

	return nil
}

func unsetResetPasswordToken() bson.D {
	return bson.D{{Key: "$unset", Value: bson.D{
		{Key: "resetPasswordToken", Value: ""},
		{Key: "resetPasswordExpire", Value: ""},
	}}}
}
