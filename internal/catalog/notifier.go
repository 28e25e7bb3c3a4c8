package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/sirupsen/logrus"

	"shop-catalog-api/internal/models"
)

// notificationSubject is the fixed subject of batch creation notifications
const notificationSubject = "Products created"

// hasEmptyAttribute tags notifications where any committed row has zero
// stock, so subscribers can filter on low-stock creations
const hasEmptyAttribute = "hasEmpty"

// PublishAPI is the subset of the SNS client the notifier uses
type PublishAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Compile-time check that the real SDK client satisfies the interface
var _ PublishAPI = (*sns.Client)(nil)

// Notifier publishes one summary notification per committed batch
type Notifier struct {
	client   PublishAPI
	topicARN string
}

// NewNotifier creates a notifier publishing to the given topic
func NewNotifier(client PublishAPI, topicARN string) *Notifier {
	return &Notifier{
		client:   client,
		topicARN: topicARN,
	}
}

// NotifyBatch publishes exactly one notification summarizing the batch's
// committed rows. A batch with no committed rows is skipped. The returned
// error is informational only: callers log it and move on, a notify failure
// never rolls back or re-queues committed rows.
func (n *Notifier) NotifyBatch(ctx context.Context, outcome *models.BatchOutcome) error {
	if len(outcome.Items) == 0 {
		return nil
	}

	payload, err := json.Marshal(outcome.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(notificationSubject),
		Message:  aws.String(string(payload)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			hasEmptyAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(strconv.FormatBool(outcome.HasEmpty())),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish batch notification: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"items":     len(outcome.Items),
		"has_empty": outcome.HasEmpty(),
	}).Info("Batch notification published")

	return nil
}
