// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"github.com/canonical/team-member-service/internal/types"
)

const (
	SideEffectProfileRole = "profile_role"
	SideEffectMembership  = "membership"
)

// SideEffect is a best-effort write performed once the account exists.
// A failed side effect never fails the creation.
type SideEffect struct {
	Name string
	Err  error
}

func (s SideEffect) Failed() bool {
	return s.Err != nil
}

// Outcome is the result of a team member creation
type Outcome struct {
	User        *types.CreatedUser
	SideEffects []SideEffect
}

func (o *Outcome) record(name string, err error) SideEffect {
	s := SideEffect{Name: name, Err: err}
	o.SideEffects = append(o.SideEffects, s)
	return s
}

// Degraded reports whether any side effect failed
func (o *Outcome) Degraded() bool {
	return len(o.Failures()) > 0
}

func (o *Outcome) Failures() []SideEffect {
	failures := make([]SideEffect, 0)
	for _, s := range o.SideEffects {
		if s.Failed() {
			failures = append(failures, s)
		}
	}
	return failures
}
