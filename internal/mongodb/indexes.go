package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DeleteAllIndexes deletes all indexes from all collections in the database
// (except the default _id_ index which cannot be deleted)
func DeleteAllIndexes(ctx context.Context, db *mongo.Database) error {
	// Get all collections in the database
	collections, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, collName := range collections {
		coll := db.Collection(collName)

		// List all indexes for this collection
		cursor, err := coll.Indexes().List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list indexes for collection '%s': %w", collName, err)
		}

		for cursor.Next(ctx) {
			var index bson.M
			if err := cursor.Decode(&index); err != nil {
				cursor.Close(ctx)
				return fmt.Errorf("failed to decode index for collection '%s': %w", collName, err)
			}

			indexName, ok := index["name"].(string)
			if !ok {
				continue
			}

			// Skip the default _id_ index as it cannot be deleted
			if indexName == "_id_" {
				continue
			}

			_, err := coll.Indexes().DropOne(ctx, indexName)
			if err != nil {
				cursor.Close(ctx)
				return fmt.Errorf("failed to delete index '%s' from collection '%s': %w", indexName, collName, err)
			}
			fmt.Printf("🗑️  Deleted index '%s' from collection '%s'\n", indexName, collName)
		}

		if err := cursor.Err(); err != nil {
			cursor.Close(ctx)
			return fmt.Errorf("cursor error for collection '%s': %w", collName, err)
		}
		cursor.Close(ctx)
	}

	return nil
}

// CreateAllIndexes creates all indexes for users, ratings, courses,
// organizations and professors collections
func CreateAllIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	if err := CreateUserIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	if err := CreateRatingIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create rating indexes: %w", err)
	}

	if err := CreateCatalogIndexes(ctx, db, reset); err != nil {
		return fmt.Errorf("failed to create catalog indexes: %w", err)
	}

	return nil
}

// CreateUserIndexes creates indexes for the users collection
func CreateUserIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(UsersCollection)
	usersEmailIndexName := "email_unique"

	// Create unique index on email (case-insensitive)
	// Exclude empty strings and null values from uniqueness constraint
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(usersEmailIndexName).
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}).
			SetPartialFilterExpression(bson.M{
				"$and": []bson.M{
					{"email": bson.M{"$type": "string"}},
					{"email": bson.M{"$gt": ""}},
				},
			}),
	}
	if err := createIndexIfNotExists(ctx, coll, emailIndex, usersEmailIndexName, reset); err != nil {
		return err
	}

	// Create unique index on username (case-insensitive)
	usersUsernameIndexName := "username_unique"
	usernameIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(usersUsernameIndexName).
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}).
			SetPartialFilterExpression(bson.M{
				"$and": []bson.M{
					{"username": bson.M{"$type": "string"}},
					{"username": bson.M{"$gt": ""}},
				},
			}),
	}
	if err := createIndexIfNotExists(ctx, coll, usernameIndex, usersUsernameIndexName, reset); err != nil {
		return err
	}

	return nil
}

// CreateRatingIndexes creates indexes for the ratings collection
func CreateRatingIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	coll := db.Collection(RatingsCollection)

	// Query index on professorId: the rollup re-reads the full rating set
	// for one professor on every read
	ratingsProfessorIndexName := "professorId_lookup"
	professorIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "professorId", Value: 1}},
		Options: options.Index().
			SetName(ratingsProfessorIndexName),
	}
	if err := createIndexIfNotExists(ctx, coll, professorIndex, ratingsProfessorIndexName, reset); err != nil {
		return err
	}

	// One review per (author, professor, course). Anonymous reviews have no
	// authorId and are excluded from the constraint.
	ratingsAuthorIndexName := "authorId_professorId_courseId_unique"
	authorIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "authorId", Value: 1}, {Key: "professorId", Value: 1}, {Key: "courseId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(ratingsAuthorIndexName).
			SetPartialFilterExpression(bson.M{
				"$and": []bson.M{
					{"authorId": bson.M{"$type": "string"}},
					{"authorId": bson.M{"$gt": ""}},
				},
			}),
	}
	if err := createIndexIfNotExists(ctx, coll, authorIndex, ratingsAuthorIndexName, reset); err != nil {
		return err
	}

	return nil
}

// CreateCatalogIndexes creates the schoolId lookup indexes for professors,
// courses and organizations
func CreateCatalogIndexes(ctx context.Context, db *mongo.Database, reset bool) error {
	for _, collName := range []string{ProfessorsCollection, CoursesCollection, OrganizationsCollection} {
		coll := db.Collection(collName)
		indexName := "schoolId_lookup"

		schoolIndex := mongo.IndexModel{
			Keys: bson.D{{Key: "schoolId", Value: 1}},
			Options: options.Index().
				SetName(indexName),
		}
		if err := createIndexIfNotExists(ctx, coll, schoolIndex, indexName, reset); err != nil {
			return err
		}
	}

	return nil
}

// createIndexIfNotExists checks if an index exists and creates it if it doesn't
// If reset is true, it will delete the existing index and recreate it
func createIndexIfNotExists(ctx context.Context, coll *mongo.Collection, indexModel mongo.IndexModel, indexName string, reset bool) error {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	indexExists := false
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			return fmt.Errorf("failed to decode index: %w", err)
		}

		if name, ok := index["name"].(string); ok && name == indexName {
			indexExists = true
			break
		}
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}

	if indexExists {
		if !reset {
			fmt.Printf("ℹ️  Index '%s' already exists on collection '%s', skipping...\n", indexName, coll.Name())
			return nil
		}
		_, err := coll.Indexes().DropOne(ctx, indexName)
		if err != nil {
			return fmt.Errorf("failed to delete index '%s': %w", indexName, err)
		}
		fmt.Printf("🗑️  Deleted index '%s' on collection '%s'\n", indexName, coll.Name())
	}

	_, err = coll.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create index '%s': %w", indexName, err)
	}

	fmt.Printf("✅ Created index '%s' on collection '%s'\n", indexName, coll.Name())
	return nil
}
