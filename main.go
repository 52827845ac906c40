package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"bootcamp-api/internal/auth"
	"bootcamp-api/internal/bootcamp"
	"bootcamp-api/internal/course"
	"bootcamp-api/internal/review"
	"bootcamp-api/internal/user"
	"bootcamp-api/pkg/config"
	"bootcamp-api/pkg/geocoder"
	"bootcamp-api/pkg/jwt_generator"
	"bootcamp-api/pkg/logger"
	"bootcamp-api/pkg/mailer"
	"bootcamp-api/pkg/mongodb"
	"bootcamp-api/pkg/ratelimit"
	"bootcamp-api/pkg/server"
	"bootcamp-api/pkg/storage"
)

const uploadsRoute = "/uploads"

func main() {
	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	isAtRemote := os.Getenv(config.IsAtRemote)
	if isAtRemote == "" {
		err = godotenv.Load()
		if err != nil {
			log.Warnw(
				"failed to load .env file",
				zap.Error(err),
			)
		}
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatalw(
			"failed to read config",
			zap.Error(err),
		)
	}
	cfg.Print()

	jwtGenerator, err := jwt_generator.NewJwtGenerator(&cfg.Jwt)
	if err != nil {
		log.Fatalw(
			"failed to create jwt generator",
			zap.Error(err),
		)
	}

	ctx := context.Background()
	mongoDbClient, err := mongodb.NewClient(ctx, &cfg.Mongodb)
	if err != nil {
		log.Fatalw(
			"failed to setup mongodb client",
			zap.Error(err),
		)
	}
	defer func(client *mongo.Client, ctx context.Context) {
		err := client.Disconnect(ctx)
		if err != nil {
			log.Errorw(
				"failed to disconnect mongodb client",
				zap.Error(err),
			)
		}
	}(mongoDbClient, ctx)

	awsConfig, err := awsCfg.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalw(
			"failed to load aws config",
			zap.Error(err),
		)
	}

	var s3Client storage.S3Client
	if cfg.Upload.S3Bucket != "" {
		s3Client = s3.NewFromConfig(awsConfig)
	}

	userRepository := user.NewRepository(mongoDbClient, &cfg.Mongodb)
	bootcampRepository := bootcamp.NewRepository(mongoDbClient, &cfg.Mongodb)
	courseRepository := course.NewRepository(mongoDbClient, &cfg.Mongodb)
	reviewRepository := review.NewRepository(mongoDbClient, &cfg.Mongodb)
	for name, ensureIndexes := range map[string]func(context.Context) error{
		"user":     userRepository.EnsureIndexes,
		"bootcamp": bootcampRepository.EnsureIndexes,
		"course":   courseRepository.EnsureIndexes,
		"review":   reviewRepository.EnsureIndexes,
	} {
		err = ensureIndexes(ctx)
		if err != nil {
			log.Fatalw(
				"failed to ensure indexes",
				zap.String("collection", name),
				zap.Error(err),
			)
		}
	}

	gate := auth.NewGate(jwtGenerator, userRepository)
	authService := auth.NewService(
		userRepository,
		jwtGenerator,
		mailer.NewMailer(sqs.NewFromConfig(awsConfig), &cfg.Email),
		&cfg.Jwt,
	)
	bootcampService := bootcamp.NewService(
		bootcampRepository,
		geocoder.NewGeocoder(&cfg.Geocoder),
		storage.NewStorage(s3Client, &cfg.Upload),
		cfg.Upload.MaxFileSize,
		courseRepository,
		reviewRepository,
	)

	handlers := []server.Handler{
		auth.NewHandler(authService, gate, cfg),
		user.NewHandler(user.NewService(userRepository, cfg.Jwt.BcryptCost), gate.Protect, gate.Authorize(user.RoleAdmin)),
		bootcamp.NewHandler(bootcampService, gate),
		course.NewHandler(course.NewService(courseRepository, bootcampRepository), gate),
		review.NewHandler(review.NewService(reviewRepository, bootcampRepository), gate),
	}

	limiter := ratelimit.NewLimiter(&cfg.RateLimit)
	srv := server.NewServer(cfg, handlers, logger.Middleware(log), limiter.Middleware())
	if s3Client == nil {
		srv.GetFiberInstance().Static(uploadsRoute, cfg.Upload.Path)
	}
	srv.RegisterRoutes()

	if isAtRemote == "" {
		err = srv.Start()
		if err != nil {
			log.Fatalw(
				"failed to start server",
				zap.Error(err),
			)
		}
	} else {
		lambda.Start(srv.LambdaProxyHandler)
	}
}
