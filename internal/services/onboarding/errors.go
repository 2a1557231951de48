package onboarding

import (
	"errors"
	"net/http"
)

var (
	ErrNoSchoolSelected    = errors.New("a school must be selected")
	ErrSchoolNotFound      = errors.New("school not found")
	ErrUnknownCourse       = errors.New("course not found in the selected school")
	ErrUnknownOrg          = errors.New("organization not found in the selected school")
	ErrEmailDomainMismatch = errors.New("email domain does not match the school")
	ErrInvalidLimit        = errors.New("batch limit must be positive")
	ErrCommitFailed        = errors.New("onboarding commit failed")
)

var ErrorMap = map[error]int{
	ErrNoSchoolSelected:    http.StatusBadRequest,
	ErrSchoolNotFound:      http.StatusNotFound,
	ErrUnknownCourse:       http.StatusNotFound,
	ErrUnknownOrg:          http.StatusNotFound,
	ErrEmailDomainMismatch: http.StatusForbidden,
	ErrCommitFailed:        http.StatusBadGateway,
}
