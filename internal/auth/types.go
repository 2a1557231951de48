package auth

import "time"

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Id          string     `json:"id"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	AvatarURL   *string    `json:"avatarUrl,omitempty"`
	SchoolId    *string    `json:"schoolId,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	AccessToken string     `json:"access_token"`
}
