package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/notekit/notekit/internal/api/recovery"
	"github.com/notekit/notekit/internal/api/requestlog"
	"github.com/notekit/notekit/internal/config"
	"github.com/notekit/notekit/internal/services"
)

// NewRouter wires HTTP routes to handlers.
func NewRouter(svc *services.NoteService, cfg *config.Config, log zerolog.Logger) *mux.Router {
	root := mux.NewRouter()

	// Global middlewares
	root.Use(recovery.Middleware)
	root.Use(requestlog.Middleware(log))

	notes := NewNotesHandler(svc, cfg)
	root.HandleFunc("/notes", notes.CreateNote).Methods("POST")
	root.HandleFunc("/notes", notes.ListNotes).Methods("GET")
	root.HandleFunc("/notes/{id}", notes.GetNote).Methods("GET")
	root.HandleFunc("/notes/{id}", notes.UpdateNote).Methods("PUT")
	root.HandleFunc("/notes/{id}", notes.DeleteNote).Methods("DELETE")
	root.HandleFunc("/notes/{id}/archive", notes.ArchiveNote).Methods("PATCH")
	root.HandleFunc("/notes/{id}/unarchive", notes.UnarchiveNote).Methods("PATCH")
	root.HandleFunc("/notes/{id}/done", notes.MarkNoteDone).Methods("PATCH")
	root.HandleFunc("/notes/{id}/undone", notes.MarkNoteUndone).Methods("PATCH")

	// Health
	health := NewHealthHandler()
	root.HandleFunc("/health", health.CheckHealth).Methods("GET")

	return root
}
