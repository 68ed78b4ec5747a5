// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"

	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/tracing"
)

type Config struct {
	Region   string
	Endpoint string

	TracingEnabled bool
}

type Client struct {
	api *dynamodb.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) API() DynamoDBAPI {
	return c.api
}

// CheckAvailability performs a cheap call against the configured endpoint
// and reports the result to the monitor. It never fails startup, a down
// database surfaces through the gauge and per-request errors.
func (c *Client) CheckAvailability(ctx context.Context) {
	ctx, span := c.tracer.Start(ctx, "db.Client.CheckAvailability")
	defer span.End()

	available := 1.0
	if _, err := c.api.ListTables(ctx, &dynamodb.ListTablesInput{}); err != nil {
		c.logger.Errorf("dynamodb availability check failed: %v", err)
		available = 0
	}

	tags := map[string]string{"dependency": "dynamodb"}
	if err := c.monitor.SetDependencyAvailability(tags, available); err != nil {
		c.logger.Errorf("failed to set availability metric: %v", err)
	}
}

func NewClient(ctx context.Context, c Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.Region),
	}

	// A local endpoint (dynamodb-local, localstack) accepts any static
	// credentials, real deployments use the default chain.
	if c.Endpoint != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	if c.TracingEnabled {
		otelaws.AppendMiddlewares(&cfg.APIOptions)
	}

	client := new(Client)
	client.api = dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = &c.Endpoint
		}
	})
	client.tracer = tracer
	client.monitor = monitor
	client.logger = logger

	client.CheckAvailability(ctx)

	return client, nil
}
