// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// NewMember is the payload of a team member creation request
type NewMember struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nome     string `json:"nome"`
	Role     string `json:"role"`
}

// NewUser is the account requested from the identity provider
type NewUser struct {
	Email          string
	Password       string
	EmailConfirmed bool
	Metadata       map[string]interface{}
}

type CreatedUser struct {
	ID             string
	Email          string
	EmailConfirmed bool
	Metadata       map[string]interface{}
}

type Profile struct {
	ID   string `db:"id" json:"id"`
	Role string `db:"role" json:"role"`
}

type Membership struct {
	ID        string    `db:"id" json:"-"`
	UserID    string    `db:"user_id" json:"user_id"`
	Nome      string    `db:"nome" json:"nome"`
	Email     string    `db:"email" json:"email"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}
