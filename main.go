package main

import (
	"log"

	"github.com/Tofulati/hallpass-sub001/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	err := server.ListenAndServe()
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
