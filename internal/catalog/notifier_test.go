package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"shop-catalog-api/internal/models"
)

// fakeTopic records publishes
type fakeTopic struct {
	published []*sns.PublishInput
	err       error
}

func (f *fakeTopic) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.published = append(f.published, params)
	return &sns.PublishOutput{MessageId: aws.String("notif-1")}, nil
}

func outcomeWithCounts(counts ...int) *models.BatchOutcome {
	outcome := &models.BatchOutcome{}
	for _, count := range counts {
		product := models.NewProduct("A", "", "", 5)
		outcome.Items = append(outcome.Items, models.CreatedItem{
			Product: product,
			Stock:   models.NewStock(product.ID, count),
		})
	}
	return outcome
}

func TestNotifyBatchPublishesOnce(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   string
	}{
		{name: "single row", counts: []int{3}, want: "false"},
		{name: "full batch all stocked", counts: []int{1, 2, 3, 4, 5}, want: "false"},
		{name: "one zero count", counts: []int{2, 0}, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic := &fakeTopic{}
			notifier := NewNotifier(topic, "arn:aws:sns:us-east-1:000000000000:create-product")

			if err := notifier.NotifyBatch(context.Background(), outcomeWithCounts(tt.counts...)); err != nil {
				t.Fatalf("NotifyBatch() error: %v", err)
			}

			if len(topic.published) != 1 {
				t.Fatalf("published %d notifications, want exactly 1", len(topic.published))
			}

			input := topic.published[0]
			if aws.ToString(input.Subject) != "Products created" {
				t.Errorf("subject = %q", aws.ToString(input.Subject))
			}

			attr, ok := input.MessageAttributes["hasEmpty"]
			if !ok {
				t.Fatal("hasEmpty attribute missing")
			}
			if aws.ToString(attr.StringValue) != tt.want {
				t.Errorf("hasEmpty = %q, want %q", aws.ToString(attr.StringValue), tt.want)
			}

			var items []models.CreatedItem
			if err := json.Unmarshal([]byte(aws.ToString(input.Message)), &items); err != nil {
				t.Fatalf("message is not a JSON item list: %v", err)
			}
			if len(items) != len(tt.counts) {
				t.Errorf("message lists %d items, want %d", len(items), len(tt.counts))
			}
		})
	}
}

func TestNotifyBatchSkipsEmptyOutcome(t *testing.T) {
	topic := &fakeTopic{}
	notifier := NewNotifier(topic, "arn:aws:sns:us-east-1:000000000000:create-product")

	outcome := &models.BatchOutcome{
		Failures: []models.BatchFailure{{MessageID: "m1", Err: errors.New("boom")}},
	}
	if err := notifier.NotifyBatch(context.Background(), outcome); err != nil {
		t.Fatalf("NotifyBatch() error: %v", err)
	}

	if len(topic.published) != 0 {
		t.Error("notification published for a batch with zero committed rows")
	}
}

func TestNotifyBatchPublishFailure(t *testing.T) {
	notifier := NewNotifier(&fakeTopic{err: errors.New("topic gone")}, "arn")

	if err := notifier.NotifyBatch(context.Background(), outcomeWithCounts(1)); err == nil {
		t.Error("expected an error when publish fails")
	}
}
