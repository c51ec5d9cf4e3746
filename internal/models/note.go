package models

// Note represents a single text note owned by exactly one user.
// UserID is assigned from the authenticated session on creation and
// never changes afterwards.
type Note struct {
	ID      int    `json:"id"`
	UserID  int    `json:"userId"`
	Content string `json:"content"`
}
