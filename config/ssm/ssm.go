// Package ssm fetches parameter values from SSM Parameter Store.
package ssm

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/finch-technologies/lambda-utils/clients"
)

// Client is the slice of the SSM API used by this package. The SDK
// client satisfies it; tests substitute their own.
type Client interface {
	GetParameter(ctx context.Context, params *awsssm.GetParameterInput, optFns ...func(*awsssm.Options)) (*awsssm.GetParameterOutput, error)
}

var _ Client = (*awsssm.Client)(nil)

type Store struct {
	client Client
}

// New returns a parameter store facade backed by the cached SSM client.
func New(ctx context.Context, cache *clients.Cache) (*Store, error) {
	client, err := cache.SSM(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ssm client: %w", err)
	}
	return NewWithClient(client), nil
}

// NewWithClient returns a facade over an already-constructed client.
// Intended for tests and hosts that manage clients themselves.
func NewWithClient(client Client) *Store {
	return &Store{client: client}
}

// GetParamValue returns the value of the named parameter. SDK errors,
// including missing parameters and denied decryption, are returned
// as-is.
func (s *Store) GetParamValue(ctx context.Context, name string, decrypt bool) (string, error) {
	response, err := s.client.GetParameter(ctx, &awsssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(decrypt),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(response.Parameter.Value), nil
}
