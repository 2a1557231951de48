package users

import (
	"github.com/Tofulati/hallpass-sub001/internal/auth"
	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
)

func MapDbUserToApiUserResponse(userDb mongodb.UserDb) UserResponse {
	return UserResponse{
		Id:          userDb.Id,
		Username:    userDb.Username,
		Name:        userDb.Name,
		Email:       userDb.Email,
		AvatarURL:   userDb.AvatarURL,
		SchoolId:    userDb.SchoolId,
		Courses:     userDb.Courses,
		Orgs:        userDb.Orgs,
		LastLoginAt: userDb.LastLoginAt,
		CreatedAt:   userDb.CreatedAt,
		UpdatedAt:   userDb.UpdatedAt,
	}
}

func MapDbUserToApiLoginResponse(userResponse UserResponse, token string) auth.LoginResponse {
	return auth.LoginResponse{
		Id:          userResponse.Id,
		Username:    userResponse.Username,
		Name:        userResponse.Name,
		Email:       userResponse.Email,
		AvatarURL:   userResponse.AvatarURL,
		SchoolId:    userResponse.SchoolId,
		LastLoginAt: userResponse.LastLoginAt,
		AccessToken: token,
	}
}
