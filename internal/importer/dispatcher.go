package importer

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/sirupsen/logrus"

	"shop-catalog-api/internal/models"
)

// SendMessageAPI is the subset of the SQS client the dispatcher uses
type SendMessageAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Compile-time check that the real SDK client satisfies the interface
var _ SendMessageAPI = (*sqs.Client)(nil)

// DispatchResult is the acknowledgment for one row's publish. Success means
// durably enqueued, not persisted.
type DispatchResult struct {
	Line      int
	MessageID string
	Err       error
}

// Dispatcher publishes valid rows to the work queue, one message per row.
// The message body is the row's raw string field map; type coercion happens
// later in the batch writer.
type Dispatcher struct {
	client   SendMessageAPI
	queueURL string
}

// NewDispatcher creates a dispatcher publishing to the given queue
func NewDispatcher(client SendMessageAPI, queueURL string) *Dispatcher {
	return &Dispatcher{
		client:   client,
		queueURL: queueURL,
	}
}

// Dispatch publishes every row received on the channel, issuing sends
// concurrently as rows arrive. It returns once the channel is closed and
// every in-flight send has resolved; a failed send never short-circuits
// the rest, each outcome is collected individually.
func (d *Dispatcher) Dispatch(ctx context.Context, rows <-chan models.ImportRow) []DispatchResult {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []DispatchResult
	)

	for row := range rows {
		wg.Add(1)
		go func(row models.ImportRow) {
			defer wg.Done()

			result := d.send(ctx, row)
			if result.Err != nil {
				logrus.WithFields(logrus.Fields{
					"line":  row.Line,
					"error": result.Err,
				}).Error("Row dispatch failed")
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(row)
	}

	wg.Wait()
	return results
}

// send publishes a single row
func (d *Dispatcher) send(ctx context.Context, row models.ImportRow) DispatchResult {
	body, err := json.Marshal(row.Fields)
	if err != nil {
		return DispatchResult{Line: row.Line, Err: &DispatchError{Line: row.Line, Err: err}}
	}

	out, err := d.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(d.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return DispatchResult{Line: row.Line, Err: &DispatchError{Line: row.Line, Err: err}}
	}

	result := DispatchResult{Line: row.Line}
	if out.MessageId != nil {
		result.MessageID = *out.MessageId
	}
	return result
}
