package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"golang.org/x/time/rate"

	"github.com/rogerio-castellano/notes-api/internal/auth"
	api "github.com/rogerio-castellano/notes-api/internal/http"
	handler "github.com/rogerio-castellano/notes-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/notes-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/notes-api/internal/notes"
	"github.com/rogerio-castellano/notes-api/internal/repo"
	"github.com/rogerio-castellano/notes-api/internal/session"
)

func newTestRouter() http.Handler {
	users := repo.NewInMemoryUserRepository()
	noteRepo := repo.NewInMemoryNoteRepository()
	sessions := session.NewMemoryStore(time.Hour)
	signer := session.NewSigner("test-secret")

	h := handler.New(
		auth.NewService(users, sessions),
		notes.NewService(noteRepo),
		signer,
		handler.CookieOptions{TTL: time.Hour},
	)

	return api.NewRouter(h, api.RouterConfig{
		FrontendOrigin: "https://localhost:3000",
		Sessions:       sessions,
		Signer:         signer,
		Limiter:        rl.New(rate.Inf, 0),
	})
}

func doJSON(r http.Handler, method, path string, payload any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			panic(fmt.Sprintf("encoding payload: %v", err))
		}
	}

	req := httptest.NewRequest(method, path, &body)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(r http.Handler, username, password string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/auth/register", handler.CredentialsRequest{Username: username, Password: password}, nil)
}

func login(r http.Handler, username, password string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/auth/login", handler.CredentialsRequest{Username: username, Password: password}, nil)
}

// sessionCookie pulls the session cookie out of a login response, or
// nil if none was set.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	return nil
}

// mustLogin registers (ignoring duplicates) and logs in, returning the
// session cookie.
func mustLogin(r http.Handler, username, password string) *http.Cookie {
	register(r, username, password)
	w := login(r, username, password)
	if w.Code != http.StatusOK {
		panic(fmt.Sprintf("login for %s failed with status %d", username, w.Code))
	}
	c := sessionCookie(w)
	if c == nil {
		panic("login response carried no session cookie")
	}
	return c
}

func listNotes(r http.Handler, cookie *http.Cookie) []handler.NoteResponse {
	w := doJSON(r, http.MethodGet, "/api/notes", nil, cookie)
	if w.Code != http.StatusOK {
		panic(fmt.Sprintf("list notes failed with status %d", w.Code))
	}
	var out []handler.NoteResponse
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		panic(fmt.Sprintf("decoding notes list: %v", err))
	}
	return out
}

func createNote(r http.Handler, cookie *http.Cookie, content string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/notes", handler.NoteRequest{Content: content}, cookie)
}
