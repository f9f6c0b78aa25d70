// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	IdentityProviderSupabase = "supabase"
	IdentityProviderKratos   = "kratos"

	DataStoreREST     = "rest"
	DataStorePostgres = "postgres"
)

// PlatformSpec holds the backend settings, the requirements of each field
// depend on the selected identity provider and data store
type PlatformSpec struct {
	IdentityProvider string `validate:"oneof=supabase kratos"`
	DataStore        string `validate:"oneof=rest postgres"`

	SupabaseURL            string `validate:"required_if=IdentityProvider supabase,required_if=DataStore rest,omitempty,url"`
	SupabaseServiceRoleKey string `validate:"required_if=IdentityProvider supabase,required_if=DataStore rest"`
	SupabaseAnonKey        string `validate:"required_if=IdentityProvider supabase,required_if=DataStore rest"`

	KratosPublicURL string `validate:"required_if=IdentityProvider kratos,omitempty,url"`
	KratosAdminURL  string `validate:"required_if=IdentityProvider kratos,omitempty,url"`

	DSN string `validate:"required_if=DataStore postgres"`
}

// Validate reports every missing or malformed setting in a single error
func (p PlatformSpec) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(p)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("failed to validate platform configuration: %w", err)
	}

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, fmt.Sprintf("%s (%s)", e.Field(), e.Tag()))
	}

	return fmt.Errorf("invalid platform configuration: %v", fields)
}
