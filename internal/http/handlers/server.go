package handlers

import (
	"time"

	"github.com/rogerio-castellano/notes-api/internal/auth"
	"github.com/rogerio-castellano/notes-api/internal/notes"
	"github.com/rogerio-castellano/notes-api/internal/session"
)

// CookieOptions controls the session cookie the login handler sets.
type CookieOptions struct {
	TTL time.Duration
	// Secure marks the cookie HTTPS-only; enabled in production.
	Secure bool
}

// Handler bundles the services the HTTP handlers dispatch to. All
// dependencies are injected at startup; there is no package-level
// state.
type Handler struct {
	auth    *auth.Service
	notes   *notes.Service
	signer  *session.Signer
	cookies CookieOptions
}

func New(authSvc *auth.Service, noteSvc *notes.Service, signer *session.Signer, cookies CookieOptions) *Handler {
	return &Handler{
		auth:    authSvc,
		notes:   noteSvc,
		signer:  signer,
		cookies: cookies,
	}
}
