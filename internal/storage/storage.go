// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/canonical/ticketing-service/internal/db"
	"github.com/canonical/ticketing-service/internal/logging"
	"github.com/canonical/ticketing-service/internal/monitoring"
	"github.com/canonical/ticketing-service/internal/tracing"
	"github.com/canonical/ticketing-service/internal/types"
)

const (
	emailIndex = "EmailIndex"
	movieIndex = "MovieIndex"
)

// Tables holds the per-entity table names, every table is keyed by
// tenant_id plus an entity specific sort key.
type Tables struct {
	Movies       string
	Schedules    string
	Reservations string
	Users        string
	Products     string
	Orders       string
}

type Storage struct {
	api    db.DynamoDBAPI
	tables Tables

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Storage) key(tenantID, sortName, sortValue string) map[string]ddbtypes.AttributeValue {
	return map[string]ddbtypes.AttributeValue{
		"tenant_id": &ddbtypes.AttributeValueMemberS{Value: tenantID},
		sortName:    &ddbtypes.AttributeValueMemberS{Value: sortValue},
	}
}

func (s *Storage) putItem(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return err
}

// putItemIfAbsent writes the item only when no item with the same key
// exists yet, mapping the failed condition to ErrDuplicateKey.
func (s *Storage) putItemIfAbsent(ctx context.Context, table, sortName string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String(fmt.Sprintf("attribute_not_exists(%s)", sortName)),
	})
	if isConditionalCheckFailed(err) {
		return ErrDuplicateKey
	}
	return err
}

func (s *Storage) getItem(ctx context.Context, table string, key map[string]ddbtypes.AttributeValue, out any) error {
	result, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return err
	}
	if result.Item == nil {
		return ErrNotFound
	}

	if err := attributevalue.UnmarshalMap(result.Item, out); err != nil {
		return fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return nil
}

// queryPartition collects every item under the tenant partition key,
// optionally through a secondary index, following pagination.
func (s *Storage) queryPartition(ctx context.Context, table, index string, keyCond expression.KeyConditionBuilder, out any) error {
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return fmt.Errorf("failed to build query expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if index != "" {
		input.IndexName = aws.String(index)
	}

	items := []map[string]ddbtypes.AttributeValue{}
	for {
		result, err := s.api.Query(ctx, input)
		if err != nil {
			return err
		}
		items = append(items, result.Items...)

		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("failed to unmarshal items: %w", err)
	}
	return nil
}

func (s *Storage) CreateMovie(ctx context.Context, movie *types.Movie) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateMovie")
	defer span.End()

	return s.putItem(ctx, s.tables.Movies, movie)
}

func (s *Storage) GetMovie(ctx context.Context, tenantID, movieID string) (*types.Movie, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetMovie")
	defer span.End()

	movie := new(types.Movie)
	if err := s.getItem(ctx, s.tables.Movies, s.key(tenantID, "movie_id", movieID), movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *Storage) ListMovies(ctx context.Context, tenantID string) ([]types.Movie, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListMovies")
	defer span.End()

	movies := []types.Movie{}
	keyCond := expression.Key("tenant_id").Equal(expression.Value(tenantID))
	if err := s.queryPartition(ctx, s.tables.Movies, "", keyCond, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *Storage) CreateSchedule(ctx context.Context, schedule *types.Schedule) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateSchedule")
	defer span.End()

	return s.putItem(ctx, s.tables.Schedules, schedule)
}

func (s *Storage) GetSchedule(ctx context.Context, tenantID, scheduleID string) (*types.Schedule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetSchedule")
	defer span.End()

	schedule := new(types.Schedule)
	if err := s.getItem(ctx, s.tables.Schedules, s.key(tenantID, "schedule_id", scheduleID), schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *Storage) ListSchedules(ctx context.Context, tenantID, movieID string) ([]types.Schedule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListSchedules")
	defer span.End()

	schedules := []types.Schedule{}
	keyCond := expression.Key("tenant_id").Equal(expression.Value(tenantID))
	index := ""
	if movieID != "" {
		keyCond = keyCond.And(expression.Key("movie_id").Equal(expression.Value(movieID)))
		index = movieIndex
	}

	if err := s.queryPartition(ctx, s.tables.Schedules, index, keyCond, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (s *Storage) UpdateScheduleSeats(ctx context.Context, tenantID, scheduleID string, expected, available int) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateScheduleSeats")
	defer span.End()

	_, err := s.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.tables.Schedules),
		Key:                 s.key(tenantID, "schedule_id", scheduleID),
		UpdateExpression:    aws.String("SET available_seats = :available"),
		ConditionExpression: aws.String("available_seats = :expected"),
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":available": &ddbtypes.AttributeValueMemberN{Value: strconv.Itoa(available)},
			":expected":  &ddbtypes.AttributeValueMemberN{Value: strconv.Itoa(expected)},
		},
	})
	if isConditionalCheckFailed(err) {
		return ErrVersionMismatch
	}
	return err
}

func (s *Storage) CreateReservation(ctx context.Context, reservation *types.Reservation) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateReservation")
	defer span.End()

	return s.putItem(ctx, s.tables.Reservations, reservation)
}

func (s *Storage) ListReservationsByEmail(ctx context.Context, tenantID, email string) ([]types.Reservation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListReservationsByEmail")
	defer span.End()

	reservations := []types.Reservation{}
	keyCond := expression.Key("tenant_id").Equal(expression.Value(tenantID)).
		And(expression.Key("email").Equal(expression.Value(email)))
	if err := s.queryPartition(ctx, s.tables.Reservations, emailIndex, keyCond, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *Storage) CreateUser(ctx context.Context, user *types.User) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateUser")
	defer span.End()

	return s.putItemIfAbsent(ctx, s.tables.Users, "email", user)
}

func (s *Storage) GetUser(ctx context.Context, tenantID, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetUser")
	defer span.End()

	user := new(types.User)
	if err := s.getItem(ctx, s.tables.Users, s.key(tenantID, "email", email), user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Storage) CreateProduct(ctx context.Context, product *types.Product) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateProduct")
	defer span.End()

	return s.putItem(ctx, s.tables.Products, product)
}

func (s *Storage) ListProducts(ctx context.Context, tenantID string) ([]types.Product, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListProducts")
	defer span.End()

	products := []types.Product{}
	keyCond := expression.Key("tenant_id").Equal(expression.Value(tenantID))
	if err := s.queryPartition(ctx, s.tables.Products, "", keyCond, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Storage) DeleteProduct(ctx context.Context, tenantID, productID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteProduct")
	defer span.End()

	_, err := s.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tables.Products),
		Key:       s.key(tenantID, "product_id", productID),
	})
	return err
}

func (s *Storage) CreateOrder(ctx context.Context, order *types.Order) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateOrder")
	defer span.End()

	return s.putItem(ctx, s.tables.Orders, order)
}

func (s *Storage) ListOrdersByEmail(ctx context.Context, tenantID, email string) ([]types.Order, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListOrdersByEmail")
	defer span.End()

	orders := []types.Order{}
	keyCond := expression.Key("tenant_id").Equal(expression.Value(tenantID)).
		And(expression.Key("email").Equal(expression.Value(email)))
	if err := s.queryPartition(ctx, s.tables.Orders, emailIndex, keyCond, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func NewStorage(api db.DynamoDBAPI, tables Tables, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.api = api
	s.tables = tables
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
