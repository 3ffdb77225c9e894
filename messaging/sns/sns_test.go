package sns

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	liberrors "github.com/finch-technologies/lambda-utils/errors"
)

type mockClient struct {
	publish func(ctx context.Context, params *awssns.PublishInput, optFns ...func(*awssns.Options)) (*awssns.PublishOutput, error)
}

func (m *mockClient) Publish(ctx context.Context, params *awssns.PublishInput, optFns ...func(*awssns.Options)) (*awssns.PublishOutput, error) {
	return m.publish(ctx, params, optFns...)
}

const testMessageID = "2013907e-de73-5f67-bccd-c57c0271179c"

func setFunctionIdentity(t *testing.T) {
	t.Helper()
	prevName, prevVersion := lambdacontext.FunctionName, lambdacontext.FunctionVersion
	lambdacontext.FunctionName = "TestFunction"
	lambdacontext.FunctionVersion = "1"
	t.Cleanup(func() {
		lambdacontext.FunctionName = prevName
		lambdacontext.FunctionVersion = prevVersion
	})
}

func capturingPublisher(captured **awssns.PublishInput) *Publisher {
	return NewWithClient(&mockClient{
		publish: func(ctx context.Context, params *awssns.PublishInput, optFns ...func(*awssns.Options)) (*awssns.PublishOutput, error) {
			*captured = params
			return &awssns.PublishOutput{MessageId: aws.String(testMessageID)}, nil
		},
	})
}

func TestPublish(t *testing.T) {
	setFunctionIdentity(t)
	topicArn := "arn:aws:sns:us-east-1:1234567890:test-topic"
	payload := map[string]any{"arg1": 17, "arg2": "value 2"}

	var captured *awssns.PublishInput
	publisher := capturingPublisher(&captured)

	messageID, err := publisher.Publish(context.Background(), topicArn, payload, PublishOptions{
		Subject: "My Subject",
		Attributes: map[string]snstypes.MessageAttributeValue{
			"att1": {DataType: aws.String("String"), StringValue: aws.String("Attribute 1")},
			"att2": {DataType: aws.String("Number"), StringValue: aws.String("157")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, testMessageID, messageID)

	assert.Equal(t, topicArn, aws.ToString(captured.TopicArn))
	assert.Equal(t, "My Subject", aws.ToString(captured.Subject))
	assert.JSONEq(t, `{"arg1":17,"arg2":"value 2"}`, aws.ToString(captured.Message))

	attrs := captured.MessageAttributes
	assert.Equal(t, "TestFunction", aws.ToString(attrs["sender"].StringValue))
	assert.Equal(t, "1", aws.ToString(attrs["sender_version"].StringValue))
	assert.Equal(t, "Attribute 1", aws.ToString(attrs["att1"].StringValue))
	assert.Equal(t, "157", aws.ToString(attrs["att2"].StringValue))
}

func TestPublishDefaultSubject(t *testing.T) {
	setFunctionIdentity(t)

	var captured *awssns.PublishInput
	publisher := capturingPublisher(&captured)

	_, err := publisher.Publish(context.Background(), "arn:aws:sns:us-east-1:1234567890:test-topic", map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "Message from TestFunction", aws.ToString(captured.Subject))
}

func TestPublishAttributeOverride(t *testing.T) {
	setFunctionIdentity(t)

	var captured *awssns.PublishInput
	publisher := capturingPublisher(&captured)

	_, err := publisher.Publish(context.Background(), "arn:aws:sns:us-east-1:1234567890:test-topic", map[string]any{"a": 1}, PublishOptions{
		Attributes: map[string]snstypes.MessageAttributeValue{
			"sender": {DataType: aws.String("String"), StringValue: aws.String("override")},
		},
	})
	require.NoError(t, err)

	// Caller-supplied attributes win over the context-derived defaults
	assert.Equal(t, "override", aws.ToString(captured.MessageAttributes["sender"].StringValue))
	assert.Equal(t, "1", aws.ToString(captured.MessageAttributes["sender_version"].StringValue))
}

func TestPublishToBus(t *testing.T) {
	setFunctionIdentity(t)
	topicArn := "arn:aws:sns:us-east-1:1234567890:message-bus"
	t.Setenv("MESSAGE_BUS_ARN", topicArn)

	var captured *awssns.PublishInput
	publisher := capturingPublisher(&captured)

	messageID, err := publisher.PublishToBus(context.Background(), map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, testMessageID, messageID)
	assert.Equal(t, topicArn, aws.ToString(captured.TopicArn))
}

func TestPublishToBusMissingArn(t *testing.T) {
	setFunctionIdentity(t)
	t.Setenv("MESSAGE_BUS_ARN", "")

	publisher := NewWithClient(&mockClient{})
	_, err := publisher.PublishToBus(context.Background(), map[string]any{"a": 1})
	require.Error(t, err)
	assert.True(t, liberrors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "MESSAGE_BUS_ARN")
}
