// Package clients holds the per-service AWS SDK clients that get
// reused between invocations by the lambda function container.
//
// A Cache creates each client lazily on first use and returns the same
// client on every later call, even if the environment changed in
// between. Hosts construct one Cache at init time and pass it to the
// facade constructors; tests construct their own Cache to force
// re-resolution.
package clients

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
)

// Endpoint override environment variables, one per service. When set,
// the value is used as the client's base endpoint; when unset the SDK
// applies its own endpoint resolution.
const (
	DynamoDBEndpointEnv = "LOCALSTACK_DYNAMODB_URL"
	S3EndpointEnv       = "LOCALSTACK_S3_URL"
	SNSEndpointEnv      = "LOCALSTACK_SNS_URL"
	SQSEndpointEnv      = "LOCALSTACK_SQS_URL"
	SSMEndpointEnv      = "LOCALSTACK_SSM_URL"
)

// Cache lazily creates and then reuses one client per AWS service.
// Each slot is guarded by a sync.Once, so concurrent first calls are
// safe, but a slot is never re-resolved once filled.
type Cache struct {
	tracing bool

	cfgOnce sync.Once
	cfg     aws.Config
	cfgErr  error

	dynamoOnce sync.Once
	dynamo     *dynamodb.Client

	s3Once sync.Once
	s3     *s3.Client

	snsOnce sync.Once
	sns     *sns.Client

	sqsOnce sync.Once
	sqs     *sqs.Client

	ssmOnce sync.Once
	ssm     *ssm.Client
}

type Option func(*Cache)

// WithTracing instruments the shared AWS config with X-Ray, so every
// client created by the cache reports subsegments per SDK call.
func WithTracing() Option {
	return func(c *Cache) {
		c.tracing = true
	}
}

func New(options ...Option) *Cache {
	c := &Cache{}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// config loads the shared AWS config once. Credentials and region come
// from the lambda execution environment.
func (c *Cache) config(ctx context.Context) (aws.Config, error) {
	c.cfgOnce.Do(func() {
		c.cfg, c.cfgErr = awsconfig.LoadDefaultConfig(ctx)
		if c.cfgErr != nil {
			c.cfgErr = fmt.Errorf("unable to load AWS SDK config: %w", c.cfgErr)
			return
		}
		if c.tracing {
			awsv2.AWSV2Instrumentor(&c.cfg.APIOptions)
		}
	})
	return c.cfg, c.cfgErr
}

// endpoint reads an override URL from the environment. A nil return
// leaves the SDK's own endpoint resolution in place.
func endpoint(envVar string) *string {
	if url := os.Getenv(envVar); url != "" {
		return aws.String(url)
	}
	return nil
}

func (c *Cache) DynamoDB(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := c.config(ctx)
	if err != nil {
		return nil, err
	}
	c.dynamoOnce.Do(func() {
		c.dynamo = dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = endpoint(DynamoDBEndpointEnv)
		})
	})
	return c.dynamo, nil
}

func (c *Cache) S3(ctx context.Context) (*s3.Client, error) {
	cfg, err := c.config(ctx)
	if err != nil {
		return nil, err
	}
	c.s3Once.Do(func() {
		c.s3 = s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = endpoint(S3EndpointEnv)
			if o.BaseEndpoint != nil {
				// Localstack serves buckets on the path, not as subdomains
				o.UsePathStyle = true
			}
		})
	})
	return c.s3, nil
}

func (c *Cache) SNS(ctx context.Context) (*sns.Client, error) {
	cfg, err := c.config(ctx)
	if err != nil {
		return nil, err
	}
	c.snsOnce.Do(func() {
		c.sns = sns.NewFromConfig(cfg, func(o *sns.Options) {
			o.BaseEndpoint = endpoint(SNSEndpointEnv)
		})
	})
	return c.sns, nil
}

func (c *Cache) SQS(ctx context.Context) (*sqs.Client, error) {
	cfg, err := c.config(ctx)
	if err != nil {
		return nil, err
	}
	c.sqsOnce.Do(func() {
		c.sqs = sqs.NewFromConfig(cfg, func(o *sqs.Options) {
			o.BaseEndpoint = endpoint(SQSEndpointEnv)
		})
	})
	return c.sqs, nil
}

func (c *Cache) SSM(ctx context.Context) (*ssm.Client, error) {
	cfg, err := c.config(ctx)
	if err != nil {
		return nil, err
	}
	c.ssmOnce.Do(func() {
		c.ssm = ssm.NewFromConfig(cfg, func(o *ssm.Options) {
			o.BaseEndpoint = endpoint(SSMEndpointEnv)
		})
	})
	return c.ssm, nil
}
