package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection    *mongo.Collection
	ProductCollection *mongo.Collection
	OrderCollection   *mongo.Collection
	Client            *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("bamboodb")
	UserCollection = database.Collection("users")
	ProductCollection = database.Collection("products")
	OrderCollection = database.Collection("orders")

	go ensureIndexes()
}

// Email uniqueness backs the duplicate-registration check; everything else is
// looked up by the generated ids. Runs in the background so startup never
// waits on index builds.
func ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("Failed to create email index: %v", err)
	}

	for _, im := range []struct {
		coll *mongo.Collection
		key  string
	}{
		{ProductCollection, "dealerId"},
		{OrderCollection, "userId"},
	} {
		_, err := im.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: im.key, Value: 1}},
		})
		if err != nil {
			log.Printf("Failed to create %s index: %v", im.key, err)
		}
	}
}
