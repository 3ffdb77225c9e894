// Package sns publishes JSON messages to SNS topics. Every message
// carries sender and sender_version attributes identifying the
// publishing lambda function, which subscribers can filter on.
package sns

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/finch-technologies/lambda-utils/clients"
	liberrors "github.com/finch-technologies/lambda-utils/errors"
	"github.com/finch-technologies/lambda-utils/log"
	"github.com/finch-technologies/lambda-utils/utils"
)

const messageBusEnv = "MESSAGE_BUS_ARN"

// Client is the slice of the SNS API used by this package. The SDK
// client satisfies it; tests substitute their own.
type Client interface {
	Publish(ctx context.Context, params *awssns.PublishInput, optFns ...func(*awssns.Options)) (*awssns.PublishOutput, error)
}

var _ Client = (*awssns.Client)(nil)

type PublishOptions struct {
	// Attributes are merged on top of the default sender and
	// sender_version attributes, overriding them on collision
	Attributes map[string]snstypes.MessageAttributeValue
	// Subject defaults to "Message from <functionName>"
	Subject string
}

type Publisher struct {
	client Client
}

// New returns an SNS facade backed by the cached SNS client.
func New(ctx context.Context, cache *clients.Cache) (*Publisher, error) {
	client, err := cache.SNS(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sns client: %w", err)
	}
	return NewWithClient(client), nil
}

// NewWithClient returns a facade over an already-constructed client.
// Intended for tests and hosts that manage clients themselves.
func NewWithClient(client Client) *Publisher {
	return &Publisher{client: client}
}

// Publish serializes the payload to JSON and publishes it to the
// topic. The function name and version of the running lambda are added
// as string attributes; options can add more or override them. Returns
// the message id assigned by SNS.
func (p *Publisher) Publish(ctx context.Context, topicArn string, payload any, options ...PublishOptions) (string, error) {
	var opts PublishOptions
	if len(options) > 0 {
		opts = options[0]
	}

	attributes := map[string]snstypes.MessageAttributeValue{
		"sender": {
			DataType:    aws.String("String"),
			StringValue: aws.String(lambdacontext.FunctionName),
		},
		"sender_version": {
			DataType:    aws.String("String"),
			StringValue: aws.String(lambdacontext.FunctionVersion),
		},
	}
	for name, value := range opts.Attributes {
		attributes[name] = value
	}

	subject := utils.StringOrDefault(opts.Subject, fmt.Sprintf("Message from %s", lambdacontext.FunctionName))

	message, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	log.Debugf("Publishing message: %s to topic: %s", message, topicArn)

	response, err := p.client.Publish(ctx, &awssns.PublishInput{
		TopicArn:          aws.String(topicArn),
		Subject:           aws.String(subject),
		Message:           aws.String(string(message)),
		MessageAttributes: attributes,
	})
	if err != nil {
		return "", err
	}

	messageID := aws.ToString(response.MessageId)
	log.Debugf("Message published. Message id: %s", messageID)
	return messageID, nil
}

// PublishToBus publishes to the application message bus topic, whose
// ARN comes from the MESSAGE_BUS_ARN environment variable.
func (p *Publisher) PublishToBus(ctx context.Context, payload any, options ...PublishOptions) (string, error) {
	topicArn := os.Getenv(messageBusEnv)
	if topicArn == "" {
		return "", liberrors.NewConfigurationError(messageBusEnv)
	}
	return p.Publish(ctx, topicArn, payload, options...)
}
