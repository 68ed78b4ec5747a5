// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	JWTSecret     string        `envconfig:"jwt_secret" required:"true"`
	TokenLifetime time.Duration `envconfig:"token_lifetime" default:"1h"`
	BcryptCost    int           `envconfig:"bcrypt_cost" default:"12"`

	AWSRegion        string `envconfig:"aws_region" default:"us-east-1"`
	DynamoDBEndpoint string `envconfig:"dynamodb_endpoint"`

	MoviesTable       string `envconfig:"movies_table" default:"movies"`
	SchedulesTable    string `envconfig:"schedules_table" default:"schedules"`
	ReservationsTable string `envconfig:"reservations_table" default:"reservations"`
	UsersTable        string `envconfig:"users_table" default:"users"`
	ProductsTable     string `envconfig:"products_table" default:"products"`
	OrdersTable       string `envconfig:"orders_table" default:"orders"`
}
