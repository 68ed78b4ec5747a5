// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Identity is the decoded payload of a bearer token. It is constructed at
// token validation time, lives in the request context and is never
// persisted.
type Identity struct {
	Email    string
	TenantID string
	Expiry   time.Time
}

type Movie struct {
	TenantID    string `dynamodbav:"tenant_id" json:"tenant_id"`
	MovieID     string `dynamodbav:"movie_id" json:"movie_id"`
	Title       string `dynamodbav:"title" json:"title"`
	Genre       string `dynamodbav:"genre" json:"genre"`
	ReleaseDate string `dynamodbav:"release_date" json:"release_date"`
	Description string `dynamodbav:"description,omitempty" json:"description,omitempty"`
	CreatedAt   string `dynamodbav:"created_at" json:"created_at"`
}

type Schedule struct {
	TenantID       string `dynamodbav:"tenant_id" json:"tenant_id"`
	ScheduleID     string `dynamodbav:"schedule_id" json:"schedule_id"`
	MovieID        string `dynamodbav:"movie_id" json:"movie_id"`
	MovieTitle     string `dynamodbav:"movie_title,omitempty" json:"movie_title,omitempty"`
	FunctionDate   string `dynamodbav:"function_date" json:"function_date"`
	AvailableSeats int    `dynamodbav:"available_seats" json:"available_seats"`
	CreatedAt      string `dynamodbav:"created_at" json:"created_at"`
}

// Reservation references a schedule by ID only; deleting the schedule does
// not cascade. FunctionDate and MovieTitle are denormalized at creation
// time and intentionally go stale if the schedule is later modified.
type Reservation struct {
	TenantID      string `dynamodbav:"tenant_id" json:"tenant_id"`
	ReservationID string `dynamodbav:"reservation_id" json:"reservation_id"`
	Email         string `dynamodbav:"email" json:"email"`
	Seats         int    `dynamodbav:"seats" json:"seats"`
	ScheduleID    string `dynamodbav:"schedule_id" json:"schedule_id"`
	FunctionDate  string `dynamodbav:"function_date" json:"function_date"`
	MovieTitle    string `dynamodbav:"movie_title" json:"movie_title"`
	CreatedAt     string `dynamodbav:"created_at" json:"created_at"`
}

type User struct {
	TenantID     string `dynamodbav:"tenant_id" json:"tenant_id"`
	Email        string `dynamodbav:"email" json:"email"`
	Name         string `dynamodbav:"name" json:"name"`
	PasswordHash string `dynamodbav:"password_hash" json:"-"`
	CreatedAt    string `dynamodbav:"created_at" json:"created_at"`
}

type Product struct {
	TenantID    string  `dynamodbav:"tenant_id" json:"tenant_id"`
	ProductID   string  `dynamodbav:"product_id" json:"product_id"`
	Name        string  `dynamodbav:"name" json:"name"`
	Description string  `dynamodbav:"description" json:"description"`
	Price       float64 `dynamodbav:"price" json:"price"`
}

type OrderProduct struct {
	ProductID string  `dynamodbav:"product_id,omitempty" json:"product_id,omitempty"`
	Name      string  `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Price     float64 `dynamodbav:"price" json:"price"`
}

type Order struct {
	TenantID   string         `dynamodbav:"tenant_id" json:"tenant_id"`
	OrderID    string         `dynamodbav:"order_id" json:"order_id"`
	Email      string         `dynamodbav:"email" json:"email"`
	Products   []OrderProduct `dynamodbav:"products" json:"products"`
	TotalPrice float64        `dynamodbav:"total_price" json:"total_price"`
	CreatedAt  string         `dynamodbav:"created_at" json:"created_at"`
}
