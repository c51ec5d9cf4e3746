package models

import "time"

// Session binds an opaque token to an authenticated user for a limited
// lifetime. Sessions live server-side only; clients hold the token in a
// cookie and never see the rest of the record.
type Session struct {
	Token     string    `json:"-"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
