// Package sqs extracts message bodies from lambda SQS events and
// offers a small send facade over an SQS queue.
package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/finch-technologies/lambda-utils/clients"
)

// Client is the slice of the SQS API used by this package. The SDK
// client satisfies it; tests substitute their own.
type Client interface {
	SendMessage(ctx context.Context, params *awssqs.SendMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error)
}

var _ Client = (*awssqs.Client)(nil)

// ParseEvent yields the decoded body of each record in the event, in
// record order. Bodies are decoded from JSON on a best-effort basis: a
// body that is not valid JSON is yielded as its raw string, which is an
// expected case for plain-text messages, not an error.
func ParseEvent(event events.SQSEvent) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, record := range event.Records {
			var item any
			if err := json.Unmarshal([]byte(record.Body), &item); err != nil {
				item = record.Body
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Messages collects the decoded bodies of all records in the event.
func Messages(event events.SQSEvent) []any {
	messages := make([]any, 0, len(event.Records))
	for message := range ParseEvent(event) {
		messages = append(messages, message)
	}
	return messages
}

type SendOptions struct {
	// MessageGroupId and MessageDeduplicationId are required for FIFO
	// queues and ignored by standard queues
	GroupID         string
	DeduplicationID string
}

type Queue struct {
	client   Client
	queueURL string
}

// New returns a send facade for one queue, backed by the cached SQS
// client.
func New(ctx context.Context, cache *clients.Cache, queueURL string) (*Queue, error) {
	client, err := cache.SQS(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sqs client: %w", err)
	}
	return NewWithClient(client, queueURL), nil
}

// NewWithClient returns a facade over an already-constructed client.
// Intended for tests and hosts that manage clients themselves.
func NewWithClient(client Client, queueURL string) *Queue {
	return &Queue{client: client, queueURL: queueURL}
}

// Send enqueues a message body. Serialization is the caller's concern.
func (q *Queue) Send(ctx context.Context, body string, options ...SendOptions) error {
	var opts SendOptions
	if len(options) > 0 {
		opts = options[0]
	}

	input := &awssqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(body),
	}
	if opts.GroupID != "" {
		input.MessageGroupId = aws.String(opts.GroupID)
	}
	if opts.DeduplicationID != "" {
		input.MessageDeduplicationId = aws.String(opts.DeduplicationID)
	}

	if _, err := q.client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to enqueue message: %w", err)
	}
	return nil
}
