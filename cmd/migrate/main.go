package main

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"

	"backend/models"
	"backend/services"
)

// Seeds the top-level foods collection from the built-in catalog, in
// batches small enough for a single Firestore commit. A failed batch is
// logged and the run continues with the next one.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Fatalf("FIREBASE_PROJECT_ID not set, aborting migration")
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		log.Fatalf("Failed to create firebase app: %v", err)
	}
	store, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create firestore client: %v", err)
	}
	defer store.Close()

	docs := services.CatalogDocuments(models.DefaultCatalog())
	chunks := services.ChunkCatalog(docs, 100)

	written, failed := 0, 0
	for i, chunk := range chunks {
		batch := store.Batch()
		for _, d := range chunk {
			batch.Set(store.Collection("foods").Doc(d.ID), d)
		}
		if _, err := batch.Commit(ctx); err != nil {
			log.Printf("batch %d/%d failed (%d docs): %v", i+1, len(chunks), len(chunk), err)
			failed += len(chunk)
			continue
		}
		written += len(chunk)
	}

	log.Printf("catalog migration done: %d written, %d failed", written, failed)
}
