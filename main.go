// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/canonical/team-member-service/cmd"
)

func main() {
	cmd.Execute()
}
