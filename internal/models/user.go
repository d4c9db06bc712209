package models

import (
	"errors"
	"time"
)

// Domain errors shared by the service and store layers. The store translates
// driver-level failures (no rows, constraint violations) into these so that
// callers see one error contract regardless of which layer detected the
// condition.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrExistingUsername = errors.New("username already exists")
	ErrExistingEmail    = errors.New("email already exists")
	ErrOwnerNotFound    = errors.New("owner not found")
)

// User represents a row in the PostgreSQL users table.
type User struct {
	ID        int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // never serialize
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the JSON body for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /api/auth/login. Exactly one of
// Username and Email identifies the account; Username wins when both are set.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
