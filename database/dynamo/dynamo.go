// Package dynamo is a thin facade over one DynamoDB table. The table
// handle is meant to be created once by the hosting lambda and reused
// across invocations; the table name is fixed at construction time.
package dynamo

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/finch-technologies/lambda-utils/clients"
	liberrors "github.com/finch-technologies/lambda-utils/errors"
	"github.com/finch-technologies/lambda-utils/utils"
)

const tableNameEnv = "DYNAMODB_TABLE"

type Table struct {
	client    Client
	tableName string
}

// New resolves the table name from the options or the DYNAMODB_TABLE
// environment variable and returns a table handle backed by the cached
// DynamoDB client.
func New(ctx context.Context, cache *clients.Cache, options ...Options) (*Table, error) {
	var opts Options
	if len(options) > 0 {
		opts = options[0]
	}

	tableName := utils.FirstValue(opts.TableName, os.Getenv(tableNameEnv))
	if tableName == "" {
		return nil, liberrors.NewConfigurationError(tableNameEnv)
	}

	client, err := cache.DynamoDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dynamodb client: %w", err)
	}

	return NewWithClient(client, tableName), nil
}

// NewWithClient returns a table handle over an already-constructed
// client. Intended for tests and hosts that manage clients themselves.
func NewWithClient(client Client, tableName string) *Table {
	return &Table{client: client, tableName: tableName}
}

func (t *Table) TableName() string {
	return t.tableName
}

// Exists checks whether an item with the given primary key is present.
// The lookup projects only the key's own attribute names to keep the
// response payload minimal. SDK errors are returned as-is.
func (t *Table) Exists(ctx context.Context, key map[string]string) (bool, error) {
	names := make([]string, 0, len(key))
	for name := range key {
		names = append(names, name)
	}

	keyAttrs, err := attributevalue.MarshalMap(key)
	if err != nil {
		return false, fmt.Errorf("failed to marshal key: %w", err)
	}

	result, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(t.tableName),
		Key:                  keyAttrs,
		ProjectionExpression: aws.String(strings.Join(names, ",")),
	})
	if err != nil {
		return false, err
	}

	return result.Item != nil, nil
}
