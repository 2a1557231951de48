package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type RatingDb struct {
	Id          string `json:"id" bson:"_id"`
	ProfessorId string `json:"professorId" bson:"professorId"`
	CourseId    string `json:"courseId" bson:"courseId"`
	// AuthorId is absent on anonymous reviews
	AuthorId          *string   `json:"authorId,omitempty" bson:"authorId,omitempty"`
	Difficulty        int       `json:"difficulty" bson:"difficulty"`
	Enjoyment         int       `json:"enjoyment" bson:"enjoyment"`
	Understandability int       `json:"understandability" bson:"understandability"`
	Retake            bool      `json:"retake" bson:"retake"`
	TotalRating       float64   `json:"totalRating" bson:"totalRating"`
	Body              string    `json:"body" bson:"body"`
	Upvotes           []string  `json:"upvotes" bson:"upvotes"`
	Downvotes         []string  `json:"downvotes" bson:"downvotes"`
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt"`
}

// ----- Methods for the database -----

func (db *DB) AddRating(ctx context.Context, rating RatingDb) (RatingDb, error) {
	coll := db.Collection(RatingsCollection)

	rating.Id = primitive.NewObjectID().Hex()
	rating.CreatedAt = time.Now()
	if rating.Upvotes == nil {
		rating.Upvotes = []string{}
	}
	if rating.Downvotes == nil {
		rating.Downvotes = []string{}
	}

	_, err := coll.InsertOne(ctx, rating)
	if err != nil {
		return RatingDb{}, err
	}

	return rating, nil
}

func (db *DB) GetRatingsByProfessorId(ctx context.Context, professorId string) ([]RatingDb, error) {
	coll := db.Collection(RatingsCollection)

	filter := bson.M{"professorId": professorId}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return []RatingDb{}, err
	}
	defer cursor.Close(ctx)

	var ratingsDb []RatingDb
	if err = cursor.All(ctx, &ratingsDb); err != nil {
		return []RatingDb{}, err
	}

	return ratingsDb, nil
}

func (db *DB) GetRatingById(ctx context.Context, ratingId string) (RatingDb, error) {
	coll := db.Collection(RatingsCollection)

	var rating RatingDb
	err := coll.FindOne(ctx, bson.M{"_id": ratingId}).Decode(&rating)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return RatingDb{}, ErrRecordNotFound
		}
		return RatingDb{}, err
	}

	return rating, nil
}

func (db *DB) RatingExists(ctx context.Context, authorId, professorId, courseId string) (bool, error) {
	coll := db.Collection(RatingsCollection)

	filter := bson.M{"authorId": authorId, "professorId": professorId, "courseId": courseId}
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, filter, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ToggleRatingVote moves a voter into addField and out of removeField in one
// atomic update, so a switch from upvote to downvote is never observed as a
// transient double-count. Returns the updated document.
func (db *DB) ToggleRatingVote(ctx context.Context, ratingId, voterId, addField, removeField string) (RatingDb, error) {
	coll := db.Collection(RatingsCollection)

	update := bson.M{
		"$addToSet": bson.M{addField: voterId},
		"$pull":     bson.M{removeField: voterId},
	}

	return db.findRatingAndUpdate(ctx, coll, ratingId, update)
}

// RemoveRatingVote pulls the voter from both vote sets. A no-op when the
// voter is in neither.
func (db *DB) RemoveRatingVote(ctx context.Context, ratingId, voterId string) (RatingDb, error) {
	coll := db.Collection(RatingsCollection)

	update := bson.M{
		"$pull": bson.M{"upvotes": voterId, "downvotes": voterId},
	}

	return db.findRatingAndUpdate(ctx, coll, ratingId, update)
}

func (db *DB) findRatingAndUpdate(ctx context.Context, coll *mongo.Collection, ratingId string, update bson.M) (RatingDb, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var rating RatingDb
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": ratingId}, update, opts).Decode(&rating)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return RatingDb{}, ErrRecordNotFound
		}
		return RatingDb{}, err
	}

	return rating, nil
}
