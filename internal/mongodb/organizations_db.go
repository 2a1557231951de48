package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type OrganizationDb struct {
	Id       string   `json:"id" bson:"_id"`
	SchoolId string   `json:"schoolId" bson:"schoolId"`
	Name     string   `json:"name" bson:"name"`
	Members  []string `json:"members" bson:"members"`
}

// ----- Methods for the database -----

func (db *DB) GetOrganizationById(ctx context.Context, id string) (OrganizationDb, error) {
	coll := db.Collection(OrganizationsCollection)

	var org OrganizationDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return OrganizationDb{}, ErrRecordNotFound
		}
		return OrganizationDb{}, err
	}

	return org, nil
}

func (db *DB) GetOrganizationsBySchool(ctx context.Context, schoolId string) ([]OrganizationDb, error) {
	coll := db.Collection(OrganizationsCollection)

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := coll.Find(ctx, bson.M{"schoolId": schoolId}, opts)
	if err != nil {
		return []OrganizationDb{}, err
	}
	defer cursor.Close(ctx)

	var orgs []OrganizationDb
	if err := cursor.All(ctx, &orgs); err != nil {
		return []OrganizationDb{}, err
	}

	return orgs, nil
}
