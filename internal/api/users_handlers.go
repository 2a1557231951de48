package api

import (
	"encoding/json"
	"net/http"

	"github.com/Tofulati/hallpass-sub001/internal/auth"
	"github.com/Tofulati/hallpass-sub001/internal/logx"
	"github.com/Tofulati/hallpass-sub001/internal/services/users"
)

func (api *API) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req users.NewUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Username == "" || req.Password == "" || req.Email == "" {
		respondWithError(w, http.StatusBadRequest, "Username, Email and Password fields are required.")
		return
	}

	user, err := users.AddUser(api.Db, r.Context(), req)
	if err != nil {
		if statusCode, ok := users.ErrorMap[err]; ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to add user")
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

func (api *API) GetMe(w http.ResponseWriter, r *http.Request) {
	currentuser := auth.GetUserFromContext(r.Context())
	if currentuser == nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	respondWithJSON(w, http.StatusOK, users.MapDbUserToApiUserResponse(*currentuser))
}
