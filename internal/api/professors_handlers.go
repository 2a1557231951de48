package api

import (
	"encoding/json"
	"net/http"

	"github.com/Tofulati/hallpass-sub001/internal/logx"
	"github.com/Tofulati/hallpass-sub001/internal/services/courses"
	"github.com/Tofulati/hallpass-sub001/internal/services/professors"
)

// CreateProfessor files a professor missing from a school's directory.
func (api *API) CreateProfessor(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	schoolId := r.PathValue("id")
	if schoolId == "" {
		respondWithError(w, http.StatusBadRequest, "School id is required")
		return
	}

	var req professors.NewProfessorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	professor, err := professors.AddProfessor(api.Db, r.Context(), schoolId, req)
	if err != nil {
		if statusCode, ok := professors.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to add professor")
		return
	}

	respondWithJSON(w, http.StatusCreated, professor)
}

func (api *API) GetProfessorDetail(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	professorId := r.PathValue("id")
	if professorId == "" {
		respondWithError(w, http.StatusBadRequest, "Professor id is required")
		return
	}

	detail, err := professors.GetProfessorDetail(api.Db, r.Context(), professorId)
	if err != nil {
		if statusCode, ok := professors.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// GetReviewCourses returns the course picker for a new review of the
// professor: the linked subset, or the full catalog when nothing links to
// them.
func (api *API) GetReviewCourses(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	professorId := r.PathValue("id")
	if professorId == "" {
		respondWithError(w, http.StatusBadRequest, "Professor id is required")
		return
	}

	professorDb, err := professors.GetProfessorDb(api.Db, r.Context(), professorId)
	if err != nil {
		if statusCode, ok := professors.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	reviewCourses, err := courses.GetReviewCourses(api.Db, r.Context(), professorDb)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, reviewCourses)
}
