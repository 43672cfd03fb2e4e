package model

import "time"

// Note is the single persisted entity: a titled text record with tags,
// an optional due date and two independent status flags.
type Note struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Tags       []string   `json:"tags"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	IsArchived bool       `json:"isArchived"`
	IsDone     bool       `json:"isDone"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// NotePayload is a validated, normalized request payload. Pointer fields are
// nil when the client did not send the field; the *Set flags distinguish an
// explicit null from an absent field where that matters for merging.
type NotePayload struct {
	Title      *string
	Content    *string
	Tags       []string
	TagsSet    bool
	DueDate    *time.Time
	DueDateSet bool
	IsArchived *bool
	IsDone     *bool
}

// ListNotesRequest captures the filters and paging window for a list call.
// Nil booleans mean "unfiltered".
type ListNotesRequest struct {
	Query      string
	Tags       []string
	IsArchived *bool
	IsDone     *bool
	Limit      int
	Offset     int
}

// NotePage is one window of a filtered listing. Total counts matches before
// pagination was applied.
type NotePage struct {
	Items   []*Note `json:"items"`
	Total   int     `json:"total"`
	Limit   int     `json:"limit"`
	Offset  int     `json:"offset"`
	HasMore bool    `json:"hasMore"`
}
