// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"errors"
)

var (
	ErrConfiguration = errors.New("server configuration error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("access denied")
)

// providerError is implemented by backend errors carrying a message for the client
type providerError interface {
	error
	ProviderMessage() string
}

// RejectedError reports a creation request refused before or by the identity provider
type RejectedError struct {
	Message string

	err error
}

func (e *RejectedError) Error() string {
	return e.Message
}

func (e *RejectedError) Unwrap() error {
	return e.err
}

func newRejectedError(err error) *RejectedError {
	var pe providerError
	if errors.As(err, &pe) {
		return &RejectedError{Message: pe.ProviderMessage(), err: err}
	}

	return &RejectedError{Message: err.Error(), err: err}
}
