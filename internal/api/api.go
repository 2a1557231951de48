package api

import (
	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
)

type API struct {
	Db     *mongodb.DB
	Secret *string
}

func NewAPI(db *mongodb.DB, secret *string) *API {
	return &API{Db: db, Secret: secret}
}

// PublicPaths lists the endpoints served without a bearer token.
var PublicPaths = map[string]bool{
	"GET /":        true,
	"POST /users":  true,
	"POST /login":  true,
	"GET /schools": true,
}

type ErrorResponse struct {
	StatusCode   int    `json:"statusCode"`
	ErrorMessage string `json:"errorMessage"`
}

type DefaultResponse struct {
	Message string `json:"message"`
}
