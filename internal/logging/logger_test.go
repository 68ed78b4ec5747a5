// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerDoesNotPanic(t *testing.T) {
	l := NewNoopLogger()
	l.Security().AuthnSuccess("user@example.com", "jwt_bearer")
	l.Security().AuthnFailure("user@example.com", "jwt_bearer")
	l.Security().AuthzFailure("user@example.com", "tenant_access")
	l.Security().SystemStartup()
	l.Security().SystemShutdown()
}
