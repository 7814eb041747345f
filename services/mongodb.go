package services

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"franchise-bot/models"
)

var (
	mongoClient *mongo.Client
	database    *mongo.Database
)

// GetDatabase returns the MongoDB database instance, nil when transcript
// persistence is disabled.
func GetDatabase() *mongo.Database {
	return database
}

// InitMongoDB initializes the MongoDB connection for transcript persistence.
func InitMongoDB(ctx context.Context, uri, databaseName string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	slog.Info("Connected to MongoDB")
	mongoClient = client
	database = client.Database(databaseName)

	createIndexes()
	return client, nil
}

// createIndexes creates necessary database indexes
func createIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	messagesCollection := database.Collection("messages")
	if _, err := messagesCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: map[string]interface{}{"chat_id": 1, "timestamp": -1}},
		{Keys: map[string]interface{}{"category": 1}},
	}); err != nil {
		slog.Warn("Failed to create message indexes", "error", err)
	}
}

// SaveMessage appends one transcript record. It is a no-op when persistence
// is disabled, and a failed insert is logged but never fails the turn.
func SaveMessage(ctx context.Context, msg *models.Message) {
	if database == nil {
		return
	}

	collection := database.Collection("messages")
	if _, err := collection.InsertOne(ctx, msg); err != nil {
		slog.Error("Failed to save message", "error", err, "chatID", msg.ChatID)
	}
}
