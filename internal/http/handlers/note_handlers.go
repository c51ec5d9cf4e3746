package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	mw "github.com/rogerio-castellano/notes-api/internal/http/middleware"
)

// ListNotesHandler godoc
// @Summary List the caller's notes
// @Tags notes
// @Produce json
// @Success 200 {array} NoteResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/notes [get]
func (h *Handler) ListNotesHandler(w http.ResponseWriter, r *http.Request) {
	userID := mw.GetUserID(r)

	owned, err := h.notes.List(r.Context(), userID)
	if err != nil {
		slog.Error("list notes failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}

	resp := []NoteResponse{}
	for _, n := range owned {
		resp = append(resp, NoteResponse{Id: n.ID, UserId: n.UserID, Content: n.Content})
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateNoteHandler godoc
// @Summary Create a note owned by the caller
// @Tags notes
// @Accept json
// @Produce json
// @Param note body NoteRequest true "note content"
// @Success 200 {object} NoteCreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/notes [post]
func (h *Handler) CreateNoteHandler(w http.ResponseWriter, r *http.Request) {
	userID := mw.GetUserID(r)

	var req NoteRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Empty content is allowed; a note can be blank.
	note, err := h.notes.Create(r.Context(), userID, req.Content)
	if err != nil {
		slog.Error("create note failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create note")
		return
	}

	writeJSON(w, http.StatusOK, NoteCreatedResponse{Id: note.ID, Content: note.Content})
}

// UpdateNoteHandler godoc
// @Summary Update a note's content
// @Description The note is matched on both id and owner. A note that
// @Description does not exist, or belongs to someone else, is left
// @Description untouched and the response is the same acknowledgement.
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "note id"
// @Param note body NoteRequest true "new content"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/notes/{id} [put]
func (h *Handler) UpdateNoteHandler(w http.ResponseWriter, r *http.Request) {
	userID := mw.GetUserID(r)

	noteID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid note id")
		return
	}

	var req NoteRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.notes.Update(r.Context(), userID, noteID, req.Content); err != nil {
		slog.Error("update note failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update note")
		return
	}

	writeMessage(w, "Updated")
}

// DeleteNoteHandler godoc
// @Summary Delete a note
// @Description Same compound-match semantics as update: only the
// @Description caller's own note is removed, and the acknowledgement
// @Description does not distinguish a miss.
// @Tags notes
// @Produce json
// @Param id path int true "note id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/notes/{id} [delete]
func (h *Handler) DeleteNoteHandler(w http.ResponseWriter, r *http.Request) {
	userID := mw.GetUserID(r)

	noteID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid note id")
		return
	}

	if err := h.notes.Delete(r.Context(), userID, noteID); err != nil {
		slog.Error("delete note failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete note")
		return
	}

	writeMessage(w, "Deleted")
}
