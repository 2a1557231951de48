package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds a sample school with professors, courses and organizations for local
// development. Re-running replaces the fixture documents in place.
func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)
	database := dbClient.Database(db.GetDatabaseName())

	if err := seed(ctx, database); err != nil {
		log.Fatalf("Failed to seed fixtures: %v", err)
	}

	fmt.Println("✅ Fixtures seeded successfully!")
}

func seed(ctx context.Context, database *mongo.Database) error {
	now := time.Now()

	schools := []any{
		bson.M{"_id": "sch-state", "name": "State University", "domain": "state.edu"},
	}

	professors := []any{
		bson.M{"_id": "prof-rivera", "schoolId": "sch-state", "name": "Alex Rivera", "createdAt": now, "updatedAt": now},
		bson.M{"_id": "prof-osei", "schoolId": "sch-state", "name": "Kofi Osei", "createdAt": now, "updatedAt": now},
		bson.M{"_id": "prof-tanaka", "schoolId": "sch-state", "name": "Yumi Tanaka", "createdAt": now, "updatedAt": now},
	}

	courses := []any{
		bson.M{
			"_id": "crs-cs101", "schoolId": "sch-state", "code": "CS101", "name": "Intro to Computer Science",
			"taughtBy": []bson.M{{"professorId": "prof-rivera", "name": "Alex Rivera"}},
			"members":  []string{},
		},
		bson.M{
			"_id": "crs-cs250", "schoolId": "sch-state", "code": "CS250", "name": "Data Structures",
			"taughtBy": []bson.M{{"professorId": "prof-rivera", "name": "Alex Rivera"}, {"name": "Kofi Osei"}},
			"members":  []string{},
		},
		bson.M{
			// Pre-linkage catalog entry: instructor known by name only
			"_id": "crs-math210", "schoolId": "sch-state", "code": "MATH210", "name": "Linear Algebra",
			"taughtBy": []bson.M{{"name": "Yumi Tanaka"}},
			"members":  []string{},
		},
	}

	organizations := []any{
		bson.M{"_id": "org-acm", "schoolId": "sch-state", "name": "ACM Chapter", "members": []string{}},
		bson.M{"_id": "org-chess", "schoolId": "sch-state", "name": "Chess Club", "members": []string{}},
	}

	fixtures := map[string][]any{
		mongodb.SchoolsCollection:       schools,
		mongodb.ProfessorsCollection:    professors,
		mongodb.CoursesCollection:       courses,
		mongodb.OrganizationsCollection: organizations,
	}

	for collName, docs := range fixtures {
		coll := database.Collection(collName)
		for _, doc := range docs {
			d := doc.(bson.M)
			filter := bson.M{"_id": d["_id"]}
			opts := options.Replace().SetUpsert(true)
			if _, err := coll.ReplaceOne(ctx, filter, d, opts); err != nil {
				return fmt.Errorf("failed to seed %s: %w", collName, err)
			}
		}
		fmt.Printf("Seeded %d documents into '%s'\n", len(docs), collName)
	}

	return nil
}
