package database

import (
	"context"

	"github.com/Riaraujo/testecrud/internal/config"
	"github.com/Riaraujo/testecrud/internal/repository"
	"github.com/Riaraujo/testecrud/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// InitMongo connects to MONGODB_URI, checks the primary answers and makes
// sure the indexes exist.
func InitMongo(cfg *config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, nil, err
	}

	db := client.Database(cfg.MongoDatabase)
	if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
		client.Disconnect(context.Background())
		return nil, nil, err
	}

	logger.Log.Info("MongoDB connection established",
		zap.String("database", cfg.MongoDatabase),
		zap.Bool("transactions", cfg.Transactions),
	)
	return client, db, nil
}
