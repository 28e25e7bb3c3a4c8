package lambda

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// ClientManager holds the AWS SDK clients for a Lambda function. It is built
// once in init() so warm invocations reuse the underlying HTTP connections.
type ClientManager struct {
	DynamoDB *dynamodb.Client
	S3       *s3.Client
	Presign  *s3.PresignClient
	SQS      *sqs.Client
	SNS      *sns.Client
}

// NewClientManager resolves the default AWS credential chain and constructs
// clients for every service the application talks to.
func NewClientManager(ctx context.Context, region string) (*ClientManager, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg)

	return &ClientManager{
		DynamoDB: dynamodb.NewFromConfig(awsCfg),
		S3:       s3Client,
		Presign:  s3.NewPresignClient(s3Client),
		SQS:      sqs.NewFromConfig(awsCfg),
		SNS:      sns.NewFromConfig(awsCfg),
	}, nil
}
