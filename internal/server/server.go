package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/Tofulati/hallpass-sub001/internal/api"
	"github.com/Tofulati/hallpass-sub001/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewServer wires the full handler chain: routes, auth, request-id logging.
func NewServer(client *mongo.Client) http.Handler {
	db := mongodb.NewDB(client)
	secret := os.Getenv("JWT_SECRET")

	a := api.NewAPI(db, &secret)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", a.RootHandler)

	mux.HandleFunc("POST /users", a.CreateUser)
	mux.HandleFunc("POST /login", a.LoginHandler)
	mux.HandleFunc("GET /users/me", a.GetMe)

	mux.HandleFunc("GET /schools", a.GetSchools)
	mux.HandleFunc("GET /schools/{id}/professors", a.GetSchoolProfessors)
	mux.HandleFunc("GET /schools/{id}/courses", a.GetSchoolCourses)
	mux.HandleFunc("GET /schools/{id}/organizations", a.GetSchoolOrganizations)
	mux.HandleFunc("POST /schools/{id}/professors", a.CreateProfessor)

	mux.HandleFunc("GET /professors/{id}", a.GetProfessorDetail)
	mux.HandleFunc("GET /professors/{id}/ratings", a.GetProfessorRatings)
	mux.HandleFunc("GET /professors/{id}/review-courses", a.GetReviewCourses)
	mux.HandleFunc("POST /professors/{id}/ratings", a.AddRating)

	mux.HandleFunc("GET /ratings/{id}", a.GetRating)
	mux.HandleFunc("POST /ratings/{id}/vote", a.CastVote)

	mux.HandleFunc("POST /onboarding", a.CompleteOnboarding)

	wrapped := AuthMiddleware(secret, db)(mux)
	return RequestIdMiddleware(wrapped)
}

func ListenAndServe() error {
	ctx := context.Background()

	client, err := mongodb.Connect(ctx)
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: NewServer(client),
	}

	log.Printf("Server is running on port %s", port)
	return server.ListenAndServe()
}
