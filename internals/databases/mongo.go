package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"quizku_backend/internals/configs"
)

// Nama collection
const (
	CollUsers           = "users"
	CollSubjects        = "subjects"
	CollQuestions       = "questions"
	CollResults         = "results"
	CollSupportRequests = "supportrequests"
)

// ConnectMongo membuat client lalu ping sampai berhasil (backoff sama dengan postgres).
func ConnectMongo(ctx context.Context, cfg *configs.Config) (*mongo.Client, *mongo.Database, error) {
	log.Println("[DB] Koneksi ke MongoDB...")

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetAppName("quizku").
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	err = Retry(ctx, "mongo", func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return client.Ping(pingCtx, readpref.Primary())
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	db := client.Database(cfg.MongoDB)
	if err := EnsureMongoIndexes(ctx, db); err != nil {
		log.Printf("[DB] gagal membuat index mongo: %v", err)
	}

	log.Printf("[DB] MongoDB connected (db=%s).", cfg.MongoDB)
	return client, db, nil
}

// EnsureMongoIndexes: unique constraint + index untuk query yang sering dipakai.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	specs := map[string][]mongo.IndexModel{
		CollUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "registerNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		CollSubjects: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "label", Value: 1}}, Options: unique},
		},
		CollQuestions: {
			{Keys: bson.D{{Key: "subject", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
		CollResults: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		CollSupportRequests: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

func PingMongo(client *mongo.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}
}
