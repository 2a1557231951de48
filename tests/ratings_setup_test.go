package tests

import (
	"context"
	"testing"

	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

func getRatingDb(t *testing.T, ratingId string) mongodb.RatingDb {
	t.Helper()

	ctx := context.Background()
	coll := testClient.Database(TEST_DB_NAME).Collection(mongodb.RatingsCollection)

	var ratingDb mongodb.RatingDb
	if err := coll.FindOne(ctx, bson.M{"_id": ratingId}).Decode(&ratingDb); err != nil {
		t.Fatalf("failed to read rating %s from db: %v", ratingId, err)
	}

	return ratingDb
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
