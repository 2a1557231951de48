package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type SchoolDb struct {
	Id     string `json:"id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	Domain string `json:"domain" bson:"domain"`
}

// ----- Methods for the database -----

func (db *DB) GetSchoolById(ctx context.Context, id string) (SchoolDb, error) {
	coll := db.Collection(SchoolsCollection)

	var school SchoolDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&school)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return SchoolDb{}, ErrRecordNotFound
		}
		return SchoolDb{}, err
	}

	return school, nil
}

func (db *DB) GetAllSchools(ctx context.Context) ([]SchoolDb, error) {
	coll := db.Collection(SchoolsCollection)

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return []SchoolDb{}, err
	}
	defer cursor.Close(ctx)

	var schools []SchoolDb
	if err := cursor.All(ctx, &schools); err != nil {
		return []SchoolDb{}, err
	}

	return schools, nil
}

func (db *DB) SchoolExists(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(SchoolsCollection)

	// Only ask MongoDB for the _id field
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
