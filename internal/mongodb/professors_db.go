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

type ProfessorDb struct {
	Id        string    `json:"id" bson:"_id"`
	SchoolId  string    `json:"schoolId" bson:"schoolId"`
	Name      string    `json:"name" bson:"name"`
	Email     *string   `json:"email,omitempty" bson:"email,omitempty"`
	ImageURL  *string   `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

func (db *DB) AddProfessor(ctx context.Context, professor ProfessorDb) (ProfessorDb, error) {
	coll := db.Collection(ProfessorsCollection)

	professor.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	professor.CreatedAt = now
	professor.UpdatedAt = now

	_, err := coll.InsertOne(ctx, professor)
	if err != nil {
		return ProfessorDb{}, err
	}

	return professor, nil
}

func (db *DB) GetProfessorById(ctx context.Context, id string) (ProfessorDb, error) {
	coll := db.Collection(ProfessorsCollection)

	var professor ProfessorDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&professor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ProfessorDb{}, ErrRecordNotFound
		}
		return ProfessorDb{}, err
	}

	return professor, nil
}

func (db *DB) GetProfessorsBySchool(ctx context.Context, schoolId string) ([]ProfessorDb, error) {
	coll := db.Collection(ProfessorsCollection)

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := coll.Find(ctx, bson.M{"schoolId": schoolId}, opts)
	if err != nil {
		return []ProfessorDb{}, err
	}
	defer cursor.Close(ctx)

	var professors []ProfessorDb
	if err := cursor.All(ctx, &professors); err != nil {
		return []ProfessorDb{}, err
	}

	return professors, nil
}
