package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	reset := flag.Bool("reset", false, "drop and recreate indexes that already exist")
	flag.Parse()

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)
	database := dbClient.Database(db.GetDatabaseName())

	if err := mongodb.CreateAllIndexes(ctx, database, *reset); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	fmt.Println("✅ All indexes created successfully!")
}
