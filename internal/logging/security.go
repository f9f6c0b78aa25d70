// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

const securityLogType = "security"

// SecurityLogger writes security events, the event field follows the OWASP
// application logging vocabulary
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(level string, event string, description string, fields ...zap.Field) {
	fields = append(
		fields,
		zap.String("type", securityLogType),
		zap.String("event", event),
		zap.String("level", level),
		zap.String("description", description),
	)

	switch level {
	case "WARN":
		s.l.Warn(description, fields...)
	default:
		s.l.Info(description, fields...)
	}
}

func (s *SecurityLogger) SystemStartup() {
	s.event("WARN", "sys_startup", "system started")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("WARN", "sys_shutdown", "system shut down")
}

func (s *SecurityLogger) AuthnFailure(reason string) {
	s.event("WARN", "authn_token_invalid", fmt.Sprintf("caller could not be authenticated: %s", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.event(
		"WARN",
		fmt.Sprintf("authz_fail:%s,%s", subject, resource),
		fmt.Sprintf("user %s attempted to access %s without entitlement", subject, resource),
		zap.String("subject", subject),
	)
}

func (s *SecurityLogger) UserCreated(actor, userID string) {
	s.event(
		"WARN",
		fmt.Sprintf("user_created:%s,%s", actor, userID),
		fmt.Sprintf("user %s created user %s", actor, userID),
		zap.String("subject", actor),
	)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.Named(securityLogType)}
}
