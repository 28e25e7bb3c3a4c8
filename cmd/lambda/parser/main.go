package main

import (
	"context"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

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

// handler reacts to ObjectCreated events under the upload prefix, streaming
// each CSV into the queue and moving the file once it fully parsed. A parse
// failure is returned so the event can be retried against the still-present
// object.
func handler(ctx context.Context, event events.S3Event) error {
	for _, record := range event.Records {
		// Event keys arrive URL-encoded, e.g. spaces as '+'
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			key = record.S3.Object.Key
		}

		summary, err := container.Importer.ProcessObject(ctx, key)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"key":   key,
				"error": err.Error(),
			}).Error("Failed to process import file")
			return err
		}

		logrus.WithFields(logrus.Fields{
			"key":        summary.Key,
			"dispatched": summary.Dispatched,
		}).Info("Upload event handled")
	}

	return nil
}

func main() {
	awslambda.Start(handler)
}
