package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rogerio-castellano/notes-api/internal/auth"
	"github.com/rogerio-castellano/notes-api/internal/session"
)

// RegisterHandler godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Missing credentials or user exists"
// @Failure 500 {object} ErrorResponse
// @Router /api/auth/register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !validCredentials(creds) {
		writeError(w, http.StatusBadRequest, "Missing credentials")
		return
	}

	err := h.auth.Register(r.Context(), creds.Username, creds.Password)
	if errors.Is(err, auth.ErrUsernameTaken) {
		writeError(w, http.StatusBadRequest, "User exists")
		return
	}
	if err != nil {
		slog.Error("register failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	writeMessage(w, "Registered")
}

// LoginHandler godoc
// @Summary Authenticate and start a session
// @Description On success the session token is set as an HTTP-only,
// @Description same-site-strict cookie. Unknown usernames and wrong
// @Description passwords yield the identical response.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess, err := h.auth.Login(r.Context(), creds.Username, creds.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	http.SetCookie(w, h.sessionCookie(h.signer.Sign(sess.Token), int(h.cookies.TTL.Seconds())))
	writeMessage(w, "Logged in")
}

// LogoutHandler godoc
// @Summary Destroy the current session
// @Description Idempotent: logging out twice, or with no session at
// @Description all, succeeds the same way.
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/auth/logout [post]
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if token, err := h.signer.Verify(cookie.Value); err == nil {
			if err := h.auth.Logout(r.Context(), token); err != nil {
				slog.Error("logout failed", "error", err)
			}
		}
	}

	http.SetCookie(w, h.sessionCookie("", -1))
	writeMessage(w, "Logged out")
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}
