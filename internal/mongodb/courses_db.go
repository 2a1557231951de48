package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type CourseDb struct {
	Id       string       `json:"id" bson:"_id"`
	SchoolId string       `json:"schoolId" bson:"schoolId"`
	Code     string       `json:"code" bson:"code"`
	Name     string       `json:"name" bson:"name"`
	TaughtBy []TaughtByDb `json:"taughtBy" bson:"taughtBy"`
	Members  []string     `json:"members" bson:"members"`
}

// TaughtByDb links a course to an instructor. Entries created before
// professors were first-class records carry only a display name.
type TaughtByDb struct {
	ProfessorId string `json:"professorId,omitempty" bson:"professorId,omitempty"`
	Name        string `json:"name" bson:"name"`
}

// ----- Methods for the database -----

func (db *DB) GetCourseById(ctx context.Context, id string) (CourseDb, error) {
	coll := db.Collection(CoursesCollection)

	var course CourseDb
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return CourseDb{}, ErrRecordNotFound
		}
		return CourseDb{}, err
	}

	return course, nil
}

func (db *DB) GetCoursesBySchool(ctx context.Context, schoolId string) ([]CourseDb, error) {
	coll := db.Collection(CoursesCollection)

	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})

	cursor, err := coll.Find(ctx, bson.M{"schoolId": schoolId}, opts)
	if err != nil {
		return []CourseDb{}, err
	}
	defer cursor.Close(ctx)

	var courses []CourseDb
	if err := cursor.All(ctx, &courses); err != nil {
		return []CourseDb{}, err
	}

	return courses, nil
}

func (db *DB) CourseExists(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(CoursesCollection)

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
