// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger writes audit events with a fixed schema: an event name,
// the acting subject and the mechanism or operation involved.
type SecurityLogger struct {
	l *zap.Logger
}

func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.Named("security")}
}

func (s *SecurityLogger) AuthnSuccess(subject, mechanism string) {
	s.l.Info("authn_success", zap.String("subject", subject), zap.String("mechanism", mechanism))
}

func (s *SecurityLogger) AuthnFailure(subject, mechanism string) {
	s.l.Warn("authn_failure", zap.String("subject", subject), zap.String("mechanism", mechanism))
}

func (s *SecurityLogger) AuthzFailure(subject, operation string) {
	s.l.Warn("authz_failure", zap.String("subject", subject), zap.String("operation", operation))
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system_startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system_shutdown")
}
