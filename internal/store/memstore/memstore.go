// Package memstore is the volatile in-memory Store driver. The collection
// lives for the process only; a restart discards all notes and resets the id
// counter to 1.
package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/notekit/notekit/internal/model"
	"github.com/notekit/notekit/internal/store"
)

// DefaultLimit is the paging window used when a request carries no usable limit.
const DefaultLimit = 10

// Store holds the collection and the next-id counter as private state.
// A single mutex serializes every operation: id allocation and merge-then-write
// are not atomic and must not interleave.
type Store struct {
	mu     sync.Mutex
	notes  []*model.Note
	nextID int64

	// now is swapped in tests to control timestamps.
	now func() time.Time
}

var _ store.Store = (*Store)(nil)

// New returns an empty store with the id counter at 1.
func New() *Store {
	return &Store{nextID: 1, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Store) Create(ctx context.Context, p *model.NotePayload) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := &model.Note{
		ID:        s.nextID,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++

	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.TagsSet && p.Tags != nil {
		n.Tags = append([]string{}, p.Tags...)
	}
	if p.DueDateSet {
		n.DueDate = p.DueDate
	}

	s.notes = append(s.notes, n)
	return snapshot(n), nil
}

func (s *Store) Get(ctx context.Context, id int64) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.find(id)
	if n == nil {
		return nil, model.ErrNotFound
	}
	return snapshot(n), nil
}

func (s *Store) List(ctx context.Context, req model.ListNotesRequest) (*model.NotePage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := req.Limit
	if limit < 0 {
		limit = DefaultLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	var matched []*model.Note
	for _, n := range s.notes {
		if matches(n, req) {
			matched = append(matched, n)
		}
	}
	total := len(matched)

	items := []*model.Note{}
	for i := offset; i < total && i < offset+limit; i++ {
		items = append(items, snapshot(matched[i]))
	}

	return &model.NotePage{
		Items:   items,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+limit < total,
	}, nil
}

func (s *Store) Update(ctx context.Context, id int64, p *model.NotePayload) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.find(id)
	if n == nil {
		return nil, model.ErrNotFound
	}

	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.TagsSet {
		if p.Tags == nil {
			n.Tags = []string{}
		} else {
			n.Tags = append([]string{}, p.Tags...)
		}
	}
	if p.DueDateSet {
		n.DueDate = p.DueDate
	}
	if p.IsArchived != nil {
		n.IsArchived = *p.IsArchived
	}
	if p.IsDone != nil {
		n.IsDone = *p.IsDone
	}
	n.UpdatedAt = s.now()

	return snapshot(n), nil
}

func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// find must be called with the mutex held.
func (s *Store) find(id int64) *model.Note {
	for _, n := range s.notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// matches applies all present filters with AND semantics.
func matches(n *model.Note, req model.ListNotesRequest) bool {
	if req.Query != "" {
		q := strings.ToLower(req.Query)
		if !strings.Contains(strings.ToLower(n.Title), q) &&
			!strings.Contains(strings.ToLower(n.Content), q) {
			return false
		}
	}
	if len(req.Tags) > 0 && !hasAnyTag(n.Tags, req.Tags) {
		return false
	}
	if req.IsArchived != nil && n.IsArchived != *req.IsArchived {
		return false
	}
	if req.IsDone != nil && n.IsDone != *req.IsDone {
		return false
	}
	return true
}

// hasAnyTag reports whether the note shares at least one tag with the filter set.
func hasAnyTag(noteTags, filter []string) bool {
	for _, f := range filter {
		for _, t := range noteTags {
			if t == f {
				return true
			}
		}
	}
	return false
}

// snapshot copies a note so callers cannot mutate stored state.
func snapshot(n *model.Note) *model.Note {
	out := *n
	out.Tags = append([]string{}, n.Tags...)
	if n.DueDate != nil {
		d := *n.DueDate
		out.DueDate = &d
	}
	return &out
}
