package users

import (
	"errors"
	"net/http"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("username or email already taken")
	ErrInvalidUsername   = errors.New("username may only contain letters, digits, '_' and '-'")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
)

var ErrorMap = map[error]int{
	ErrUserNotFound:      http.StatusNotFound,
	ErrUserAlreadyExists: http.StatusConflict,
	ErrInvalidUsername:   http.StatusBadRequest,
	ErrInvalidEmail:      http.StatusBadRequest,
	ErrPasswordTooShort:  http.StatusBadRequest,
}
