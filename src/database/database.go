package database

import (
	"context"
	"log"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	SubmissionCollection *mongo.Collection
	StaffCollection      *mongo.Collection
)

// ConnectMongoDB connects once and wires up the shared collection handles.
func ConnectMongoDB(uri, dbName string) error {
	once.Do(func() {
		clientOptions := options.Client().ApplyURI(uri)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			return
		}

		db := client.Database(dbName)
		SubmissionCollection = db.Collection("submissions")
		StaffCollection = db.Collection("staff")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns an arbitrary collection handle.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
