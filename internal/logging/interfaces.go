// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits audit events on a dedicated logger so that
// they can be filtered and shipped independently of application logs.
type SecurityLoggerInterface interface {
	AuthnSuccess(subject, mechanism string)
	AuthnFailure(subject, mechanism string)
	AuthzFailure(subject, operation string)
	SystemStartup()
	SystemShutdown()
}
