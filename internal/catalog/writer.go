// Package catalog implements the queue-to-table half of the import pipeline:
// batched transactional persistence of product+stock pairs and the per-batch
// creation notification.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"shop-catalog-api/internal/models"
	"shop-catalog-api/internal/repositories"
)

// DefaultMaxBatch is the queue's delivery batch bound
const DefaultMaxBatch = 5

// Message is one queued row as delivered by the work queue. The body is the
// JSON string field map produced by the dispatcher.
type Message struct {
	ID   string
	Body string
}

// Writer persists delivered rows. Each row gets its own atomic product+stock
// transaction; rows in a batch are independent of each other.
//
// Redelivered rows are not deduplicated: every delivery mints a fresh product
// ID, so an at-least-once replay produces a duplicate catalog entry. This is
// a documented limitation of the pipeline, not a bug.
type Writer struct {
	catalog  repositories.CatalogWriter
	maxBatch int
}

// NewWriter creates a batch writer over the given transactional pair writer
func NewWriter(catalog repositories.CatalogWriter, maxBatch int) *Writer {
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatch
	}
	return &Writer{
		catalog:  catalog,
		maxBatch: maxBatch,
	}
}

// CommitBatch writes every row of one delivery batch. Row transactions are
// issued concurrently and independently: a failing row is reported in the
// outcome while its siblings commit. The batch is never transactional as a
// whole.
func (w *Writer) CommitBatch(ctx context.Context, msgs []Message) *models.BatchOutcome {
	if len(msgs) > w.maxBatch {
		logrus.WithFields(logrus.Fields{
			"size":      len(msgs),
			"max_batch": w.maxBatch,
		}).Warn("Delivery exceeds configured batch bound")
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		outcome models.BatchOutcome
	)

	for _, msg := range msgs {
		wg.Add(1)
		go func(msg Message) {
			defer wg.Done()

			item, err := w.commitRow(ctx, msg)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"message_id": msg.ID,
					"error":      err,
				}).Error("Row commit failed")
				outcome.Failures = append(outcome.Failures, models.BatchFailure{MessageID: msg.ID, Err: err})
				return
			}
			outcome.Items = append(outcome.Items, *item)
		}(msg)
	}

	wg.Wait()
	return &outcome
}

// commitRow decodes, validates and transactionally persists one row
func (w *Writer) commitRow(ctx context.Context, msg Message) (*models.CreatedItem, error) {
	var fields map[string]string
	if err := json.Unmarshal([]byte(msg.Body), &fields); err != nil {
		return nil, fmt.Errorf("failed to decode row body: %w", err)
	}

	candidate, rowErr := models.CandidateFromFields(fields)
	if rowErr != nil {
		return nil, rowErr
	}

	// A fresh ID per delivery: replays intentionally create duplicates
	product := models.NewProduct(candidate.Title, candidate.Description, candidate.Image, candidate.Price)
	stock := models.NewStock(product.ID, candidate.Count)

	if err := w.catalog.CreatePair(ctx, product, stock); err != nil {
		return nil, err
	}

	return &models.CreatedItem{Product: product, Stock: stock}, nil
}
