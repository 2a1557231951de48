package api

import (
	"encoding/json"
	"net/http"

	"github.com/Tofulati/hallpass-sub001/internal/auth"
	"github.com/Tofulati/hallpass-sub001/internal/logx"
	"github.com/Tofulati/hallpass-sub001/internal/services/onboarding"
)

// CompleteOnboarding applies the user's school, course and club choices.
// The commit is split into bounded groups and is replay-safe, so a Failed
// response can be retried by re-issuing the same request.
func (api *API) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	var selection onboarding.Selection
	if err := json.NewDecoder(r.Body).Decode(&selection); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	result, err := onboarding.Commit(api.Db, r.Context(), *currentuser, selection)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(onboarding.ErrorMap, err); ok {
			logger.Printf("ERROR: %v", err)
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error occurred")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
