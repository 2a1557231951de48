package api

import (
	"net/http"

	"github.com/Tofulati/hallpass-sub001/internal/logx"
	"github.com/Tofulati/hallpass-sub001/internal/services/courses"
	"github.com/Tofulati/hallpass-sub001/internal/services/onboarding"
	"github.com/Tofulati/hallpass-sub001/internal/services/professors"
	"github.com/Tofulati/hallpass-sub001/internal/services/schools"
)

func (api *API) GetSchools(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	allSchools, err := schools.GetAllSchools(api.Db, r.Context())
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, schools.AllSchoolsResponse{Schools: allSchools})
}

func (api *API) GetSchoolProfessors(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	schoolId := r.PathValue("id")
	if schoolId == "" {
		respondWithError(w, http.StatusBadRequest, "School id is required")
		return
	}

	if _, err := schools.GetSchoolById(api.Db, r.Context(), schoolId); err != nil {
		if statusCode, ok := schools.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	schoolProfessors, err := professors.GetProfessorsBySchool(api.Db, r.Context(), schoolId)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, professors.AllProfessorsResponse{Professors: schoolProfessors})
}

func (api *API) GetSchoolCourses(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	schoolId := r.PathValue("id")
	if schoolId == "" {
		respondWithError(w, http.StatusBadRequest, "School id is required")
		return
	}

	catalog, err := courses.GetSchoolCatalog(api.Db, r.Context(), schoolId)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string][]courses.Course{"courses": catalog})
}

func (api *API) GetSchoolOrganizations(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	schoolId := r.PathValue("id")
	if schoolId == "" {
		respondWithError(w, http.StatusBadRequest, "School id is required")
		return
	}

	orgs, err := onboarding.GetSchoolOrganizations(api.Db, r.Context(), schoolId)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string][]onboarding.Organization{"organizations": orgs})
}
