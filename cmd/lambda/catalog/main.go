package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"shop-catalog-api/internal/catalog"
	"shop-catalog-api/internal/config"
	"shop-catalog-api/pkg/server"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainerWithConfig(context.Background(), cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

// handler consumes queued import rows, writes each product/stock pair in its
// own transaction and publishes one notification per batch. Rows that failed
// to write are reported back so only those messages are redelivered.
func handler(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	msgs := make([]catalog.Message, 0, len(event.Records))
	for _, record := range event.Records {
		msgs = append(msgs, catalog.Message{
			ID:   record.MessageId,
			Body: record.Body,
		})
	}

	outcome := container.Writer.CommitBatch(ctx, msgs)

	// The notification is best effort; a publish failure must not cause the
	// already-written rows to be redelivered.
	if err := container.Notifier.NotifyBatch(ctx, outcome); err != nil {
		logrus.WithField("error", err.Error()).Error("Failed to publish batch notification")
	}

	var resp events.SQSEventResponse
	for _, failure := range outcome.Failures {
		logrus.WithFields(logrus.Fields{
			"message_id": failure.MessageID,
			"error":      failure.Err.Error(),
		}).Error("Failed to commit import row")

		resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{
			ItemIdentifier: failure.MessageID,
		})
	}

	return resp, nil
}

func main() {
	awslambda.Start(handler)
}
