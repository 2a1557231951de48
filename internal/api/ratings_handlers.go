package api

import (
	"encoding/json"
	"net/http"

	"github.com/Tofulati/hallpass-sub001/internal/auth"
	"github.com/Tofulati/hallpass-sub001/internal/logx"
	"github.com/Tofulati/hallpass-sub001/internal/services/professors"
	"github.com/Tofulati/hallpass-sub001/internal/services/ratings"
)

func (api *API) AddRating(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	professorId := r.PathValue("id")
	if professorId == "" {
		respondWithError(w, http.StatusBadRequest, "Professor id is required")
		return
	}

	var req ratings.NewRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	// Validation failures never reach the store
	if err := ratings.ValidateNewRating(req); err != nil {
		if statusCode, ok := ratings.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		respondWithError(w, http.StatusBadRequest, formatErrorMessage(err))
		return
	}

	if _, err := professors.GetProfessorDb(api.Db, r.Context(), professorId); err != nil {
		if statusCode, ok := professors.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	newRating, err := ratings.AddRating(api.Db, r.Context(), professorId, currentuser.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(ratings.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error occurred")
		return
	}

	respondWithJSON(w, http.StatusCreated, newRating)
}

func (api *API) GetProfessorRatings(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	professorId := r.PathValue("id")
	if professorId == "" {
		respondWithError(w, http.StatusBadRequest, "Professor id is required")
		return
	}

	allRatings, aggregate, err := ratings.GetProfessorRatings(api.Db, r.Context(), professorId)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"aggregate": aggregate,
		"ratings":   allRatings,
	})
}

// GetRating returns a single review by id.
func (api *API) GetRating(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	ratingId := r.PathValue("id")
	if ratingId == "" {
		respondWithError(w, http.StatusBadRequest, "Rating id is required")
		return
	}

	rating, err := ratings.GetRatingById(api.Db, r.Context(), ratingId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(ratings.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, rating)
}

// CastVote toggles the current user's vote on a rating. The professor's
// aggregate is not recomputed here; readers re-fetch it explicitly.
func (api *API) CastVote(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	ratingId := r.PathValue("id")
	if ratingId == "" {
		respondWithError(w, http.StatusBadRequest, "Rating id is required")
		return
	}

	var req ratings.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	voteResponse, err := ratings.CastVote(api.Db, r.Context(), ratingId, currentuser.Id, req.Action)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(ratings.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error occurred")
		return
	}

	respondWithJSON(w, http.StatusOK, voteResponse)
}
