package users

import (
	"context"

	"github.com/Tofulati/hallpass-sub001/internal/auth"
	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

func AddUser(db *mongodb.DB, ctx context.Context, req NewUserRequest) (UserResponse, error) {
	if !IsValidUsername(req.Username) {
		return UserResponse{}, ErrInvalidUsername
	}
	if !IsValidEmail(req.Email) {
		return UserResponse{}, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return UserResponse{}, ErrPasswordTooShort
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return UserResponse{}, err
	}

	userDb, err := db.AddUser(ctx, mongodb.UserDb{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return UserResponse{}, ErrUserAlreadyExists
		}
		return UserResponse{}, err
	}

	return MapDbUserToApiUserResponse(userDb), nil
}

func GetUserById(db *mongodb.DB, ctx context.Context, id string) (UserResponse, error) {
	userDb, err := db.GetUserById(ctx, id)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return UserResponse{}, ErrUserNotFound
		}
		return UserResponse{}, err
	}

	return MapDbUserToApiUserResponse(userDb), nil
}

func GetUserDbByUsernameOrEmail(db *mongodb.DB, ctx context.Context, username, email string) (mongodb.UserDb, error) {
	userDb, err := db.GetUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return mongodb.UserDb{}, ErrUserNotFound
		}
		return mongodb.UserDb{}, err
	}

	return userDb, nil
}

// BuildLoginResponse records the login time and shapes the login payload.
func BuildLoginResponse(db *mongodb.DB, ctx context.Context, userDb mongodb.UserDb, token string) (auth.LoginResponse, error) {
	if err := db.SetLastLogin(ctx, userDb.Id); err != nil {
		return auth.LoginResponse{}, err
	}

	return MapDbUserToApiLoginResponse(MapDbUserToApiUserResponse(userDb), token), nil
}
