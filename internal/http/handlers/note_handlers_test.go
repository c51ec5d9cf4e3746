package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/notes-api/internal/http/handlers"
)

func TestNoteRoutes_RequireSession(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/notes"},
		{http.MethodPost, "/api/notes"},
		{http.MethodPut, "/api/notes/1"},
		{http.MethodDelete, "/api/notes/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doJSON(r, tt.method, tt.path, nil, nil)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401 without a session, got %d", w.Code)
			}
		})
	}
}

func TestNoteRoutes_RejectForgedCookie(t *testing.T) {
	r := newTestRouter()
	mustLogin(r, "alice", "p1")

	forged := &http.Cookie{Name: "session_id", Value: "deadbeef.deadbeef"}
	w := doJSON(r, http.MethodGet, "/api/notes", nil, forged)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for forged cookie, got %d", w.Code)
	}
}

func TestNotes_RoundTrip(t *testing.T) {
	r := newTestRouter()
	cookie := mustLogin(r, "alice", "p1")

	w := createNote(r, cookie, "buy milk")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on create, got %d", w.Code)
	}

	var created handler.NoteCreatedResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if created.Id == 0 {
		t.Fatal("created note has no id")
	}
	if created.Content != "buy milk" {
		t.Errorf("expected content 'buy milk', got %q", created.Content)
	}

	owned := listNotes(r, cookie)
	if len(owned) != 1 {
		t.Fatalf("expected 1 note, got %d", len(owned))
	}
	if owned[0].Id != created.Id || owned[0].Content != "buy milk" {
		t.Errorf("listed note does not match created one: %+v", owned[0])
	}

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/notes/%d", created.Id), handler.NoteRequest{Content: "buy eggs"}, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d", w.Code)
	}

	owned = listNotes(r, cookie)
	if len(owned) != 1 || owned[0].Content != "buy eggs" {
		t.Errorf("expected updated content 'buy eggs', got %+v", owned)
	}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/notes/%d", created.Id), nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", w.Code)
	}

	if owned = listNotes(r, cookie); len(owned) != 0 {
		t.Errorf("expected no notes after delete, got %d", len(owned))
	}
}

func TestNotes_OwnerScoping(t *testing.T) {
	r := newTestRouter()
	alice := mustLogin(r, "alice", "p1")
	bob := mustLogin(r, "bob", "p2")

	w := createNote(r, alice, "alice's secret")
	var created handler.NoteCreatedResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	// Bob never sees Alice's note.
	if owned := listNotes(r, bob); len(owned) != 0 {
		t.Fatalf("bob can see %d of alice's notes", len(owned))
	}

	// Bob's update and delete against Alice's note id answer with the
	// same acknowledgement as a real change but affect zero rows: the
	// API does not distinguish "not yours" from done.
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/notes/%d", created.Id), handler.NoteRequest{Content: "defaced"}, bob)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 on cross-user update, got %d", w.Code)
	}
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/notes/%d", created.Id), nil, bob)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 on cross-user delete, got %d", w.Code)
	}

	owned := listNotes(r, alice)
	if len(owned) != 1 {
		t.Fatalf("alice's note vanished after bob's attempts")
	}
	if owned[0].Content != "alice's secret" {
		t.Errorf("alice's note was modified: %q", owned[0].Content)
	}
}

// Update and delete return the same acknowledgement whether or not the
// note exists; a miss is not an error.
func TestNotes_UnknownIDActsAsNoOp(t *testing.T) {
	r := newTestRouter()
	cookie := mustLogin(r, "alice", "p1")

	w := doJSON(r, http.MethodPut, "/api/notes/999", handler.NoteRequest{Content: "x"}, cookie)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 updating unknown note, got %d", w.Code)
	}
	w = doJSON(r, http.MethodDelete, "/api/notes/999", nil, cookie)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 deleting unknown note, got %d", w.Code)
	}
}

func TestCreateNote_EmptyContentAllowed(t *testing.T) {
	r := newTestRouter()
	cookie := mustLogin(r, "alice", "p1")

	w := createNote(r, cookie, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty content, got %d", w.Code)
	}

	owned := listNotes(r, cookie)
	if len(owned) != 1 || owned[0].Content != "" {
		t.Errorf("expected one empty note, got %+v", owned)
	}
}

func TestUpdateNote_InvalidID(t *testing.T) {
	r := newTestRouter()
	cookie := mustLogin(r, "alice", "p1")

	w := doJSON(r, http.MethodPut, "/api/notes/abc", handler.NoteRequest{Content: "x"}, cookie)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric id, got %d", w.Code)
	}
}

func TestListNotes_EmptyIsArray(t *testing.T) {
	r := newTestRouter()
	cookie := mustLogin(r, "alice", "p1")

	w := doJSON(r, http.MethodGet, "/api/notes", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}
