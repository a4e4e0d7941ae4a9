package services_test

import (
	"fmt"
	"testing"

	"backend/models"
	"backend/services"
)

func TestChunkCatalog(t *testing.T) {
	docs := make([]services.CatalogDocument, 250)
	for i := range docs {
		docs[i].ID = fmt.Sprintf("item-%d", i)
	}

	chunks := services.ChunkCatalog(docs, 100)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	sizes := []int{len(chunks[0]), len(chunks[1]), len(chunks[2])}
	if sizes[0] != 100 || sizes[1] != 100 || sizes[2] != 50 {
		t.Fatalf("unexpected chunk sizes: %v", sizes)
	}

	total := 0
	for _, c := range chunks {
		if len(c) > 100 {
			t.Fatalf("chunk exceeds the batch ceiling: %d", len(c))
		}
		total += len(c)
	}
	if total != 250 {
		t.Fatalf("documents lost in chunking: %d of 250", total)
	}
}

func TestChunkCatalogEdgeCases(t *testing.T) {
	if got := services.ChunkCatalog(nil, 100); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
	if got := services.ChunkCatalog(make([]services.CatalogDocument, 5), 0); got != nil {
		t.Fatalf("expected nil for non-positive size, got %v", got)
	}

	exact := services.ChunkCatalog(make([]services.CatalogDocument, 100), 100)
	if len(exact) != 1 || len(exact[0]) != 100 {
		t.Fatalf("exact multiple should yield a single full chunk, got %d chunks", len(exact))
	}
}

func TestCatalogDocuments(t *testing.T) {
	docs := services.CatalogDocuments(models.DefaultCatalog())

	if len(docs) == 0 {
		t.Fatal("expected a non-empty catalog")
	}

	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		if d.ID == "" || d.Name == "" || d.Category == "" {
			t.Fatalf("incomplete document: %+v", d)
		}
		if seen[d.ID] {
			t.Fatalf("duplicate catalog id %q", d.ID)
		}
		seen[d.ID] = true
	}
}
