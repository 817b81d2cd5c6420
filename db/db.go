package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection            *mongo.Collection
	SellerCollection          *mongo.Collection
	DeliveryPartnerCollection *mongo.Collection
	ProductCollection         *mongo.Collection
	CartCollection            *mongo.Collection
	OrderCollection           *mongo.Collection
	WasteRequestCollection    *mongo.Collection
	Client                    *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("ecogrocer")
	UserCollection = database.Collection("users")
	SellerCollection = database.Collection("sellers")
	DeliveryPartnerCollection = database.Collection("deliverypartners")
	ProductCollection = database.Collection("products")
	CartCollection = database.Collection("carts")
	OrderCollection = database.Collection("orders")
	WasteRequestCollection = database.Collection("wasterequests")
}
