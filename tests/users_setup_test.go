package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Tofulati/hallpass-sub001/internal/auth"
	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
	"github.com/Tofulati/hallpass-sub001/internal/services/users"
	"go.mongodb.org/mongo-driver/bson"
)

// addUser registers a user and logs them in, returning the user and a valid
// access token.
func addUser(t *testing.T, req users.NewUserRequest) (users.UserResponse, string) {
	t.Helper()

	respCreate := doRequest(t, http.MethodPost, "/users", "", req)
	defer respCreate.Body.Close()
	if respCreate.StatusCode != http.StatusCreated {
		t.Fatalf("failed to create user %s: status %d", req.Username, respCreate.StatusCode)
	}

	var user users.UserResponse
	if err := json.NewDecoder(respCreate.Body).Decode(&user); err != nil {
		t.Fatalf("failed to decode create-user response: %v", err)
	}

	respLogin := doRequest(t, http.MethodPost, "/login", "", auth.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	defer respLogin.Body.Close()
	if respLogin.StatusCode != http.StatusOK {
		t.Fatalf("failed to log in user %s: status %d", req.Username, respLogin.StatusCode)
	}

	var login auth.LoginResponse
	if err := json.NewDecoder(respLogin.Body).Decode(&login); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return user, login.AccessToken
}

func getUserDb(t *testing.T, userId string) mongodb.UserDb {
	t.Helper()

	ctx := context.Background()
	coll := testClient.Database(TEST_DB_NAME).Collection(mongodb.UsersCollection)

	var userDb mongodb.UserDb
	if err := coll.FindOne(ctx, bson.M{"_id": userId}).Decode(&userDb); err != nil {
		t.Fatalf("failed to read user %s from db: %v", userId, err)
	}

	return userDb
}
