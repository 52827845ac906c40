package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"bootcamp-api/internal/seeder"
	"bootcamp-api/pkg/config"
	"bootcamp-api/pkg/logger"
	"bootcamp-api/pkg/mongodb"
)

func main() {
	importData := flag.Bool("import", false, "import the fixtures of the data directory")
	destroyData := flag.Bool("destroy", false, "drop every collection")
	dataDir := flag.String("data", "./_data", "fixture directory")
	flag.Parse()

	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if *importData == *destroyData {
		log.Fatal("exactly one of -import or -destroy is required")
	}

	err = godotenv.Load()
	if err != nil {
		log.Warnw(
			"failed to load .env file",
			zap.Error(err),
		)
	}

	mongodbConfig, err := config.ReadMongoDbConfig()
	if err != nil {
		log.Fatalw(
			"failed to read mongodb config",
			zap.Error(err),
		)
	}

	jwtConfig, err := config.ReadJwtConfig()
	if err != nil {
		log.Fatalw(
			"failed to read jwt config",
			zap.Error(err),
		)
	}

	ctx := logger.InjectContext(context.Background(), log)
	mongoDbClient, err := mongodb.NewClient(ctx, &mongodbConfig)
	if err != nil {
		log.Fatalw(
			"failed to setup mongodb client",
			zap.Error(err),
		)
	}
	defer func(client *mongo.Client, ctx context.Context) {
		_ = client.Disconnect(ctx)
	}(mongoDbClient, ctx)

	dataSeeder := seeder.NewSeeder(mongoDbClient, &mongodbConfig, jwtConfig.BcryptCost)
	if *destroyData {
		err = dataSeeder.Destroy(ctx)
	} else {
		err = dataSeeder.Import(ctx, os.DirFS(*dataDir))
	}
	if err != nil {
		log.Errorw(
			"seeder failed",
			zap.Error(err),
		)
		os.Exit(1)
	}
}
