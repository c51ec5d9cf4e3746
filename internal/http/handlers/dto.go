package handlers

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type NoteRequest struct {
	Content string `json:"content"`
}

type NoteResponse struct {
	Id      int    `json:"id"`
	UserId  int    `json:"userId"`
	Content string `json:"content"`
}

// NoteCreatedResponse echoes the new note without the owner id, which
// the caller already is.
type NoteCreatedResponse struct {
	Id      int    `json:"id"`
	Content string `json:"content"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
