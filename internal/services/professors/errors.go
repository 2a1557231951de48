package professors

import (
	"errors"
	"net/http"
)

var (
	ErrProfessorNotFound = errors.New("professor not found")
	ErrEmptyName         = errors.New("professor name cannot be empty")
	ErrSchoolNotFound    = errors.New("school not found")
)

var ErrorMap = map[error]int{
	ErrProfessorNotFound: http.StatusNotFound,
	ErrEmptyName:         http.StatusBadRequest,
	ErrSchoolNotFound:    http.StatusNotFound,
}
