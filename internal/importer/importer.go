// Package importer implements the CSV ingestion pipeline: stream an uploaded
// file, validate rows against the fixed product schema, dispatch valid rows
// to the work queue, and move the file to the parsed prefix once the whole
// stream has been consumed and every dispatch has acknowledged.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"shop-catalog-api/internal/models"
	"shop-catalog-api/internal/storage"
)

// Summary reports the row counts for one processed file
type Summary struct {
	Key        string `json:"key"`
	Parsed     int    `json:"parsed"`
	Valid      int    `json:"valid"`
	Invalid    int    `json:"invalid"`
	Dispatched int    `json:"dispatched"`
	Failed     int    `json:"failed"`
}

// Importer runs the upload-to-queue half of the pipeline for one file
type Importer struct {
	storage      storage.ObjectStorage
	dispatcher   *Dispatcher
	uploadPrefix string
	parsedPrefix string
}

// NewImporter creates an importer over the given storage and dispatcher
func NewImporter(store storage.ObjectStorage, dispatcher *Dispatcher, uploadPrefix, parsedPrefix string) *Importer {
	return &Importer{
		storage:      store,
		dispatcher:   dispatcher,
		uploadPrefix: uploadPrefix,
		parsedPrefix: parsedPrefix,
	}
}

// ParsedKey maps an uploaded object key to its parsed-prefix destination
func (imp *Importer) ParsedKey(key string) string {
	if strings.HasPrefix(key, imp.uploadPrefix) {
		return imp.parsedPrefix + strings.TrimPrefix(key, imp.uploadPrefix)
	}
	return imp.parsedPrefix + key
}

// ProcessObject streams the object at key through the pipeline.
//
// Rows are parsed sequentially but dispatched concurrently; the call blocks
// until every dispatch has acknowledged, success or failure. Rows failing
// validation are logged and dropped, never retried. A malformed row aborts
// the whole file with a ParseError and the object is left in place under the
// upload prefix, which is the pipeline's retry mechanism. Only a cleanly
// consumed stream is acknowledged by moving the object to the parsed prefix;
// rows dispatched before a late parse failure are not retracted.
func (imp *Importer) ProcessObject(ctx context.Context, key string) (*Summary, error) {
	summary := &Summary{Key: key}

	body, err := imp.storage.Open(ctx, key)
	if err != nil {
		return summary, fmt.Errorf("failed to open %s: %w", key, err)
	}
	defer body.Close()

	parser, err := NewParser(body)
	if err != nil {
		return summary, err
	}

	// The dispatcher drains the channel concurrently while rows are parsed
	rows := make(chan models.ImportRow)
	resultsCh := make(chan []DispatchResult, 1)
	go func() {
		resultsCh <- imp.dispatcher.Dispatch(ctx, rows)
	}()

	var parseErr error
	for {
		row, err := parser.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			parseErr = err
			break
		}

		summary.Parsed++

		if _, rowErr := models.CandidateFromFields(row.Fields); rowErr != nil {
			summary.Invalid++
			logrus.WithFields(logrus.Fields{
				"key":    key,
				"line":   row.Line,
				"kind":   string(rowErr.Kind),
				"field":  rowErr.Field,
				"reason": rowErr.Reason,
			}).Warn("Dropping invalid row")
			continue
		}

		summary.Valid++
		rows <- *row
	}

	// Every dispatch already issued is awaited even when the parse failed
	close(rows)
	results := <-resultsCh

	for _, result := range results {
		if result.Err != nil {
			summary.Failed++
		} else {
			summary.Dispatched++
		}
	}

	if parseErr != nil {
		// No move: the file stays visible under the upload prefix
		return summary, parseErr
	}

	dstKey := imp.ParsedKey(key)
	if err := imp.storage.Move(ctx, key, dstKey); err != nil {
		return summary, fmt.Errorf("failed to mark %s processed: %w", key, err)
	}

	logrus.WithFields(logrus.Fields{
		"key":        key,
		"parsed":     summary.Parsed,
		"valid":      summary.Valid,
		"invalid":    summary.Invalid,
		"dispatched": summary.Dispatched,
		"failed":     summary.Failed,
	}).Info("Import file processed")

	return summary, nil
}
