package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rogerio-castellano/notes-api/internal/http/handlers"
	mw "github.com/rogerio-castellano/notes-api/internal/http/middleware"
	rl "github.com/rogerio-castellano/notes-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/notes-api/internal/session"
)

// RouterConfig carries the collaborators the router wires in front of
// the handlers.
type RouterConfig struct {
	FrontendOrigin string
	Sessions       session.Store
	Signer         *session.Signer
	Limiter        *rl.Limiter
}

func NewRouter(h *handlers.Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger)
	r.Use(mw.SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(cfg.Limiter.Middleware)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.RegisterHandler)
		r.Post("/login", h.LoginHandler)
		r.Post("/logout", h.LogoutHandler)
	})

	r.Route("/api/notes", func(r chi.Router) {
		r.Use(mw.RequireAuth(cfg.Sessions, cfg.Signer))
		r.Get("/", h.ListNotesHandler)
		r.Post("/", h.CreateNoteHandler)
		r.Put("/{id}", h.UpdateNoteHandler)
		r.Delete("/{id}", h.DeleteNoteHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
