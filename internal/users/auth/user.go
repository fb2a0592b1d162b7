// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth authenticates catalog operators.

Operators are the only accounts of the service. They exchange a username and
password for a short-lived RS256 access token, which the authorization gate
verifies on every mutating request without touching the database.

# Architecture

  - Service: Login, Me and the CreateUser used by the operator CLI.
  - Repository: Postgres-backed users table.
  - Security: bcrypt hashes and RSA-signed JWTs from the sec package.
*/
package auth

import (
	"time"

	"github.com/taibuivan/grandline/internal/platform/constants"
)

// # Domain Entities

// User is a catalog operator.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Roles

const (
	RoleEditor = constants.DefaultRole
	RoleAdmin  = "admin"
)

// Roles lists the accepted operator roles.
var Roles = []string{RoleEditor, RoleAdmin}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldRole     = "role"
)

const (
	UsernameMaxLength = 50
	PasswordMinLength = 8

	// bcrypt ignores everything past 72 bytes.
	PasswordMaxLength = 72
)

// CodeUsernameTaken is returned when an operator account already uses the username.
const CodeUsernameTaken = "USERNAME_TAKEN"
