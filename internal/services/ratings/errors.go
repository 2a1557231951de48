package ratings

import (
	"errors"
	"net/http"
)

var (
	ErrMissingSubRating    = errors.New("all of difficulty, enjoyment, understandability and retake are required")
	ErrSubRatingOutOfRange = errors.New("sub-ratings must be between 1 and 5")
	ErrEmptyBody           = errors.New("review body cannot be empty")
	ErrNoCourseSelected    = errors.New("a course must be selected")
	ErrRatingAlreadyExists = errors.New("you already reviewed this professor for this course")
	ErrRatingNotFound      = errors.New("rating not found")
	ErrUnknownVoteAction   = errors.New("vote action must be one of upvote, downvote or remove")
	ErrUnknownVoter        = errors.New("voting requires an authenticated user")
)

var ErrorMap = map[error]int{
	ErrMissingSubRating:    http.StatusBadRequest,
	ErrSubRatingOutOfRange: http.StatusBadRequest,
	ErrEmptyBody:           http.StatusBadRequest,
	ErrNoCourseSelected:    http.StatusBadRequest,
	ErrRatingAlreadyExists: http.StatusConflict,
	ErrRatingNotFound:      http.StatusNotFound,
	ErrUnknownVoteAction:   http.StatusBadRequest,
	ErrUnknownVoter:        http.StatusUnauthorized,
}
