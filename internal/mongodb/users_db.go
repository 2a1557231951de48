package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ----- Types for the database -----

type UserDb struct {
	Id           string     `json:"id" bson:"_id"`
	Username     string     `json:"username" bson:"username"`
	Name         string     `json:"name" bson:"name"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"passwordHash" bson:"passwordHash"`
	AvatarURL    *string    `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	SchoolId     *string    `json:"schoolId,omitempty" bson:"schoolId,omitempty"`
	Courses      []string   `json:"courses" bson:"courses"`
	Orgs         []string   `json:"orgs" bson:"orgs"`
	IsActive     bool       `json:"isActive" bson:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// ----- Methods for the database -----

func (db *DB) AddUser(ctx context.Context, user UserDb) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	user.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true
	if user.Courses == nil {
		user.Courses = []string{}
	}
	if user.Orgs == nil {
		user.Orgs = []string{}
	}

	_, err := coll.InsertOne(ctx, user)
	if err != nil {
		return UserDb{}, err
	}

	return user, nil
}

func (db *DB) GetUserById(ctx context.Context, id string) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	var userDb UserDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}

	return userDb, nil
}

func (db *DB) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	filter := bson.M{"$or": []bson.M{{"username": username}, {"email": email}}}

	var userDb UserDb
	if err := coll.FindOne(ctx, filter).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}

	return userDb, nil
}

func (db *DB) SetLastLogin(ctx context.Context, id string) error {
	coll := db.Collection(UsersCollection)

	now := time.Now()
	update := bson.M{"$set": bson.M{"lastLoginAt": now, "updatedAt": now}}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}
