// Package dynamo implements the repository interfaces on top of DynamoDB.
// Repositories depend on narrow per-operation client interfaces so tests can
// substitute fakes without touching the AWS SDK.
package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// PutItemAPI is the subset of the DynamoDB client used for single writes
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// GetItemAPI is the subset of the DynamoDB client used for key lookups
type GetItemAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// ScanAPI is the subset of the DynamoDB client used for full table reads
type ScanAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// TransactWriteAPI is the subset of the DynamoDB client used for
// all-or-nothing multi-item writes
type TransactWriteAPI interface {
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// TableAPI is the full client surface the repositories need
type TableAPI interface {
	PutItemAPI
	GetItemAPI
	ScanAPI
	TransactWriteAPI
}

// Compile-time checks that the real SDK client satisfies the interfaces
var (
	_ PutItemAPI       = (*dynamodb.Client)(nil)
	_ GetItemAPI       = (*dynamodb.Client)(nil)
	_ ScanAPI          = (*dynamodb.Client)(nil)
	_ TransactWriteAPI = (*dynamodb.Client)(nil)
	_ TableAPI         = (*dynamodb.Client)(nil)
)
