package store

import (
	"context"

	"github.com/notekit/notekit/internal/model"
)

// Store is the sole authority over the note collection; all reads and writes
// pass through it. Implementations live under internal/store/<driver>/.
type Store interface {
	// Create assigns the next id, applies defaults and appends the note.
	// It never fails given an already-normalized payload.
	Create(ctx context.Context, p *model.NotePayload) (*model.Note, error)
	// Get returns the note with the given id or model.ErrNotFound.
	Get(ctx context.Context, id int64) (*model.Note, error)
	// List applies the filters, counts matches, then applies the paging
	// window. Items keep the collection's insertion order.
	List(ctx context.Context, req model.ListNotesRequest) (*model.NotePage, error)
	// Update shallow-merges the payload onto the existing note and refreshes
	// updatedAt, or returns model.ErrNotFound.
	Update(ctx context.Context, id int64, p *model.NotePayload) (*model.Note, error)
	// Delete removes the note permanently. The boolean reports whether a
	// note was actually removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
