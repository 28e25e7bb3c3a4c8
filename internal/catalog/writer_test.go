package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"shop-catalog-api/internal/models"
)

// fakeCatalogWriter records committed pairs; titles in failTitles fail
type fakeCatalogWriter struct {
	mu         sync.Mutex
	pairs      []models.CreatedItem
	failTitles map[string]bool
}

func (f *fakeCatalogWriter) CreatePair(_ context.Context, product *models.Product, stock *models.Stock) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failTitles[product.Title] {
		return errors.New("transaction canceled")
	}

	f.pairs = append(f.pairs, models.CreatedItem{Product: product, Stock: stock})
	return nil
}

func (f *fakeCatalogWriter) committed() []models.CreatedItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.CreatedItem(nil), f.pairs...)
}

func rowMessage(t *testing.T, id, title, price, count string) Message {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"title": title,
		"price": price,
		"count": count,
	})
	if err != nil {
		t.Fatal(err)
	}
	return Message{ID: id, Body: string(body)}
}

func TestCommitBatchWritesConsistentPairs(t *testing.T) {
	store := &fakeCatalogWriter{}
	writer := NewWriter(store, DefaultMaxBatch)

	outcome := writer.CommitBatch(context.Background(), []Message{
		rowMessage(t, "m1", "A", "5", "2"),
	})

	if len(outcome.Items) != 1 || len(outcome.Failures) != 0 {
		t.Fatalf("outcome items=%d failures=%d, want 1 and 0", len(outcome.Items), len(outcome.Failures))
	}

	item := outcome.Items[0]
	if item.Stock.ProductID != item.Product.ID {
		t.Error("stock is not keyed by the product's generated ID")
	}
	if item.Stock.Count != 2 {
		t.Errorf("stock count = %d, want 2", item.Stock.Count)
	}
	if item.Product.Price != 5 {
		t.Errorf("product price = %v, want 5", item.Product.Price)
	}
}

func TestCommitBatchPartialFailure(t *testing.T) {
	store := &fakeCatalogWriter{failTitles: map[string]bool{"C": true}}
	writer := NewWriter(store, DefaultMaxBatch)

	msgs := []Message{
		rowMessage(t, "m1", "A", "5", "2"),
		rowMessage(t, "m2", "B", "5", "2"),
		rowMessage(t, "m3", "C", "5", "2"),
		rowMessage(t, "m4", "D", "5", "2"),
		rowMessage(t, "m5", "E", "5", "2"),
	}

	outcome := writer.CommitBatch(context.Background(), msgs)

	if len(outcome.Items) != 4 {
		t.Errorf("committed items = %d, want 4", len(outcome.Items))
	}
	if len(outcome.Failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(outcome.Failures))
	}
	if outcome.Failures[0].MessageID != "m3" {
		t.Errorf("failed message = %s, want m3", outcome.Failures[0].MessageID)
	}

	if len(store.committed()) != 4 {
		t.Errorf("store holds %d pairs, want 4", len(store.committed()))
	}
}

func TestCommitBatchInvalidRowsReported(t *testing.T) {
	store := &fakeCatalogWriter{}
	writer := NewWriter(store, DefaultMaxBatch)

	outcome := writer.CommitBatch(context.Background(), []Message{
		{ID: "m1", Body: "not json"},
		rowMessage(t, "m2", "", "5", "2"),
		rowMessage(t, "m3", "A", "-1", "2"),
		rowMessage(t, "m4", "B", "5", "1"),
	})

	if len(outcome.Items) != 1 {
		t.Errorf("committed items = %d, want 1", len(outcome.Items))
	}
	if len(outcome.Failures) != 3 {
		t.Errorf("failures = %d, want 3", len(outcome.Failures))
	}
}

func TestCommitBatchReplayCreatesDuplicate(t *testing.T) {
	store := &fakeCatalogWriter{}
	writer := NewWriter(store, DefaultMaxBatch)
	msg := rowMessage(t, "m1", "A", "5", "2")

	first := writer.CommitBatch(context.Background(), []Message{msg})
	second := writer.CommitBatch(context.Background(), []Message{msg})

	// At-least-once redelivery is not deduplicated: each delivery mints
	// a new ID and a separate catalog entry
	if first.Items[0].Product.ID == second.Items[0].Product.ID {
		t.Error("replayed delivery reused the product ID instead of creating a duplicate")
	}
	if len(store.committed()) != 2 {
		t.Errorf("store holds %d pairs after replay, want 2", len(store.committed()))
	}
}

func TestCommitBatchEmpty(t *testing.T) {
	writer := NewWriter(&fakeCatalogWriter{}, DefaultMaxBatch)

	outcome := writer.CommitBatch(context.Background(), nil)
	if len(outcome.Items) != 0 || len(outcome.Failures) != 0 {
		t.Error("empty batch produced a non-empty outcome")
	}
}
