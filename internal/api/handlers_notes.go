package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/notekit/notekit/internal/api/respond"
	"github.com/notekit/notekit/internal/config"
	"github.com/notekit/notekit/internal/model"
	"github.com/notekit/notekit/internal/services"
	"github.com/notekit/notekit/internal/validate"
)

// NotesHandler is the thin transport layer over NoteService.
type NotesHandler struct {
	svc             *services.NoteService
	defaultPageSize int
	maxBodyBytes    int64
}

func NewNotesHandler(svc *services.NoteService, cfg *config.Config) *NotesHandler {
	return &NotesHandler{
		svc:             svc,
		defaultPageSize: cfg.DefaultPageSize,
		maxBodyBytes:    cfg.MaxBodyBytes,
	}
}

// CreateNote POST /notes
func (h *NotesHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	payload, vs := validate.CreateNote(raw)
	if vs != nil {
		respond.WriteViolations(w, vs)
		return
	}

	note, err := h.svc.CreateNote(r.Context(), payload)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteData(w, http.StatusCreated, note)
}

// GetNote GET /notes/{id}
func (h *NotesHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}
	note, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, id, err)
		return
	}
	respond.WriteData(w, http.StatusOK, note)
}

// ListNotes GET /notes
func (h *NotesHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := model.ListNotesRequest{
		Query:  q.Get("q"),
		Tags:   parseTags(q["tags"]),
		Limit:  parseIntOrDefault(q.Get("limit"), h.defaultPageSize),
		Offset: parseIntOrDefault(q.Get("offset"), 0),
	}
	if b, err := strconv.ParseBool(q.Get("isArchived")); err == nil {
		req.IsArchived = &b
	}
	if b, err := strconv.ParseBool(q.Get("isDone")); err == nil {
		req.IsDone = &b
	}

	page, err := h.svc.ListNotes(r.Context(), req)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WritePage(w, page)
}

// UpdateNote PUT /notes/{id}
func (h *NotesHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}
	raw, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	payload, vs := validate.UpdateNote(raw)
	if vs != nil {
		respond.WriteViolations(w, vs)
		return
	}

	note, err := h.svc.UpdateNote(r.Context(), id, payload)
	if err != nil {
		h.writeStoreError(w, id, err)
		return
	}
	respond.WriteData(w, http.StatusOK, note)
}

// DeleteNote DELETE /notes/{id}
func (h *NotesHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}
	deleted, err := h.svc.DeleteNote(r.Context(), id)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	if !deleted {
		respond.WriteNotFound(w, fmt.Sprintf("note %d not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ArchiveNote PATCH /notes/{id}/archive
func (h *NotesHandler) ArchiveNote(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.Archive)
}

// UnarchiveNote PATCH /notes/{id}/unarchive
func (h *NotesHandler) UnarchiveNote(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.Unarchive)
}

// MarkNoteDone PATCH /notes/{id}/done
func (h *NotesHandler) MarkNoteDone(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.MarkDone)
}

// MarkNoteUndone PATCH /notes/{id}/undone
func (h *NotesHandler) MarkNoteUndone(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.MarkUndone)
}

func (h *NotesHandler) toggle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) (*model.Note, error)) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}
	note, err := op(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, id, err)
		return
	}
	respond.WriteData(w, http.StatusOK, note)
}

// noteID parses the {id} path segment. Non-numeric input behaves as not
// found: no stored note can match it.
func (h *NotesHandler) noteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respond.WriteNotFound(w, fmt.Sprintf("note %s not found", raw))
		return 0, false
	}
	return id, true
}

func (h *NotesHandler) decodeBody(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return nil, false
	}
	return raw, true
}

func (h *NotesHandler) writeStoreError(w http.ResponseWriter, id int64, err error) {
	if errors.Is(err, model.ErrNotFound) {
		respond.WriteNotFound(w, fmt.Sprintf("note %d not found", id))
		return
	}
	respond.WriteInternalError(w, err.Error())
}

// parseTags merges repeated tags params and comma-separated values.
func parseTags(values []string) []string {
	var tags []string
	for _, v := range values {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// parseIntOrDefault treats absent, non-numeric and negative input as the
// default rather than erroring. An explicit "0" is honored.
func parseIntOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
