package users

import "time"

type UserResponse struct {
	Id          string     `json:"id"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	AvatarURL   *string    `json:"avatarUrl,omitempty"`
	SchoolId    *string    `json:"schoolId,omitempty"`
	Courses     []string   `json:"courses"`
	Orgs        []string   `json:"orgs"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type NewUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AllUsersResponse struct {
	Users []UserResponse `json:"users"`
}
