package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"taskboard/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	loadDotenv()

	log.Println("taskboard api starting")
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("taskboard api stopped with error: %v", err)
	}
}

// loadDotenv pulls in a local .env when present. Deployed environments set
// real env vars and ship no .env file.
func loadDotenv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Printf("load .env failed: %v", err)
	}
}
