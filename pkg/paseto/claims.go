package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the app-facing token payload. Every token is scoped to one
// practice; handlers must never trust a practice id from the request when the
// token already carries one.
type Claims struct {
	Type TokenType

	StaffID    uuid.UUID
	PracticeID uuid.UUID
	Role       string
	SessionID  *uuid.UUID

	Issuer   string
	Audience string

	IssuedAt  time.Time
	NotBefore time.Time
	ExpiresAt time.Time
	TokenID   string // jti
	Subject   string
}

func (c *Claims) GetStaffID() uuid.UUID {
	return c.StaffID
}

func (c *Claims) GetPracticeID() uuid.UUID {
	return c.PracticeID
}

func (c *Claims) GetSessionID() *uuid.UUID {
	return c.SessionID
}

func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
