// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"

	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	ErrNotFound        = errors.New("item not found")
	ErrDuplicateKey    = errors.New("item already exists")
	ErrVersionMismatch = errors.New("conditional update failed")
)

func isConditionalCheckFailed(err error) bool {
	var condErr *ddbtypes.ConditionalCheckFailedException
	return errors.As(err, &condErr)
}
