package services

import "backend/models"

// CatalogDocument is a row of the top-level foods collection, written
// only by the one-off migration.
type CatalogDocument struct {
	ID            string                 `firestore:"id"`
	Name          string                 `firestore:"name"`
	Category      string                 `firestore:"category"`
	GlycemicIndex string                 `firestore:"glycemicIndex"`
	Nutrition     *models.NutritionFacts `firestore:"nutrition,omitempty"`
	Notes         string                 `firestore:"notes,omitempty"`
}

// CatalogDocuments flattens the category tree into one document per
// food item.
func CatalogDocuments(catalog []models.FoodCategory) []CatalogDocument {
	var docs []CatalogDocument
	for _, cat := range catalog {
		for _, item := range cat.Items {
			docs = append(docs, CatalogDocument{
				ID:            item.ID,
				Name:          item.Name,
				Category:      cat.Name,
				GlycemicIndex: item.GlycemicIndex,
				Nutrition:     item.Nutrition,
				Notes:         item.Notes,
			})
		}
	}
	return docs
}

// ChunkCatalog splits the documents into batches no larger than size,
// the backing store's per-transaction write ceiling.
func ChunkCatalog(docs []CatalogDocument, size int) [][]CatalogDocument {
	if size <= 0 || len(docs) == 0 {
		return nil
	}
	var chunks [][]CatalogDocument
	for len(docs) > size {
		chunks = append(chunks, docs[:size])
		docs = docs[size:]
	}
	return append(chunks, docs)
}
