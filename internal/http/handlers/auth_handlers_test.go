package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/notes-api/internal/http/handlers"
)

func TestRegisterHandler_Valid(t *testing.T) {
	r := newTestRouter()

	w := register(r, "alice", "p1")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.MessageResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message != "Registered" {
		t.Errorf("expected message 'Registered', got %q", resp.Message)
	}
}

func TestRegisterHandler_DuplicateUsername(t *testing.T) {
	r := newTestRouter()

	if w := register(r, "alice", "p1"); w.Code != http.StatusOK {
		t.Fatalf("first registration failed with %d", w.Code)
	}

	w := register(r, "alice", "p2")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate username, got %d", w.Code)
	}

	var resp handler.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Error != "User exists" {
		t.Errorf("expected error 'User exists', got %q", resp.Error)
	}

	// The first user's record is unaffected: the original password
	// still logs in.
	if w := login(r, "alice", "p1"); w.Code != http.StatusOK {
		t.Errorf("original credentials no longer work, got %d", w.Code)
	}
	if w := login(r, "alice", "p2"); w.Code != http.StatusUnauthorized {
		t.Errorf("second registration's password unexpectedly works, got %d", w.Code)
	}
}

func TestRegisterHandler_MissingCredentials(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "secret"},
		{"empty password", "bob", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := register(r, tt.username, tt.password)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

// Wrong password and nonexistent username must be indistinguishable:
// same status, same body.
func TestLoginHandler_EnumerationResistance(t *testing.T) {
	r := newTestRouter()
	register(r, "alice", "p1")

	wrongPassword := login(r, "alice", "wrong")
	unknownUser := login(r, "nobody", "wrong")

	if wrongPassword.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", wrongPassword.Code)
	}
	if unknownUser.Code != http.StatusUnauthorized {
		t.Fatalf("unknown user: expected 401, got %d", unknownUser.Code)
	}
	if wrongPassword.Body.String() != unknownUser.Body.String() {
		t.Errorf("failure responses differ: %q vs %q", wrongPassword.Body.String(), unknownUser.Body.String())
	}
}

func TestLoginHandler_SetsSessionCookie(t *testing.T) {
	r := newTestRouter()
	register(r, "alice", "p1")

	w := login(r, "alice", "p1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	c := sessionCookie(w)
	if c == nil {
		t.Fatal("no session cookie set on login")
	}
	if !c.HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Error("session cookie is not SameSite=Strict")
	}
	if c.Value == "" {
		t.Error("session cookie has empty value")
	}
}

func TestLogoutHandler_Idempotent(t *testing.T) {
	r := newTestRouter()
	cookie := mustLogin(r, "alice", "p1")

	// Logout with an active session, again with the now-dead cookie,
	// and once with no cookie at all: every call succeeds.
	for _, c := range []*http.Cookie{cookie, cookie, nil} {
		w := doJSON(r, http.MethodPost, "/api/auth/logout", nil, c)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 on logout, got %d", w.Code)
		}

		var resp handler.MessageResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Message != "Logged out" {
			t.Errorf("expected message 'Logged out', got %q", resp.Message)
		}
	}

	// The session is unusable afterwards.
	w := doJSON(r, http.MethodGet, "/api/notes", nil, cookie)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", w.Code)
	}
}
