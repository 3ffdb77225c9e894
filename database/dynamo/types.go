package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Client is the slice of the DynamoDB API used by this package. The
// SDK client satisfies it; tests substitute their own.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

var _ Client = (*dynamodb.Client)(nil)

type Options struct {
	// TableName overrides the DYNAMODB_TABLE environment variable
	TableName string
}
