package services

import (
	"context"

	"github.com/notekit/notekit/internal/model"
	"github.com/notekit/notekit/internal/store"
)

// NoteService is a thin orchestration layer over the store. Status toggles
// are named operations so a transition can never touch other fields.
type NoteService struct {
	store store.Store
}

func NewNoteService(s store.Store) *NoteService {
	return &NoteService{store: s}
}

func (s *NoteService) CreateNote(ctx context.Context, p *model.NotePayload) (*model.Note, error) {
	return s.store.Create(ctx, p)
}

func (s *NoteService) GetNote(ctx context.Context, id int64) (*model.Note, error) {
	return s.store.Get(ctx, id)
}

func (s *NoteService) ListNotes(ctx context.Context, req model.ListNotesRequest) (*model.NotePage, error) {
	return s.store.List(ctx, req)
}

func (s *NoteService) UpdateNote(ctx context.Context, id int64, p *model.NotePayload) (*model.Note, error) {
	return s.store.Update(ctx, id, p)
}

func (s *NoteService) DeleteNote(ctx context.Context, id int64) (bool, error) {
	return s.store.Delete(ctx, id)
}

func (s *NoteService) Archive(ctx context.Context, id int64) (*model.Note, error) {
	return s.setFlag(ctx, id, func(p *model.NotePayload) { p.IsArchived = boolPtr(true) })
}

func (s *NoteService) Unarchive(ctx context.Context, id int64) (*model.Note, error) {
	return s.setFlag(ctx, id, func(p *model.NotePayload) { p.IsArchived = boolPtr(false) })
}

func (s *NoteService) MarkDone(ctx context.Context, id int64) (*model.Note, error) {
	return s.setFlag(ctx, id, func(p *model.NotePayload) { p.IsDone = boolPtr(true) })
}

func (s *NoteService) MarkUndone(ctx context.Context, id int64) (*model.Note, error) {
	return s.setFlag(ctx, id, func(p *model.NotePayload) { p.IsDone = boolPtr(false) })
}

// setFlag confirms the note exists before delegating to update, so a missing
// id surfaces as not-found rather than an implicit create.
func (s *NoteService) setFlag(ctx context.Context, id int64, set func(*model.NotePayload)) (*model.Note, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}
	p := &model.NotePayload{}
	set(p)
	return s.store.Update(ctx, id, p)
}

func boolPtr(b bool) *bool { return &b }
