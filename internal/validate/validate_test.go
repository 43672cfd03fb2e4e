package validate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	return raw
}

func fields(vs Violations) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Field)
	}
	return out
}

func TestCreateNote_Valid(t *testing.T) {
	p, vs := CreateNote(decode(t, `{"title":"Buy milk","content":"2%","tags":["errand"]}`))
	require.Nil(t, vs)
	require.NotNil(t, p.Title)
	assert.Equal(t, "Buy milk", *p.Title)
	assert.Equal(t, []string{"errand"}, p.Tags)
	assert.True(t, p.TagsSet)
	assert.Nil(t, p.IsArchived)
	assert.Nil(t, p.IsDone)
}

func TestCreateNote_TagsDefaultEmpty(t *testing.T) {
	p, vs := CreateNote(decode(t, `{"title":"a","content":"b"}`))
	require.Nil(t, vs)
	assert.True(t, p.TagsSet)
	assert.Equal(t, []string{}, p.Tags)
}

func TestCreateNote_EmptyTitle(t *testing.T) {
	_, vs := CreateNote(decode(t, `{"title":"","content":"ok"}`))
	require.Len(t, vs, 1)
	assert.Equal(t, "title", vs[0].Field)
	assert.Equal(t, RuleTooShort, vs[0].Rule)
}

func TestCreateNote_MissingContent(t *testing.T) {
	_, vs := CreateNote(decode(t, `{"title":"ok"}`))
	require.Len(t, vs, 1)
	assert.Equal(t, "content", vs[0].Field)
	assert.Equal(t, RuleRequired, vs[0].Rule)
}

func TestCreateNote_ReportsAllViolations(t *testing.T) {
	_, vs := CreateNote(decode(t, `{"title":"","tags":["","ok"],"dueDate":"not-a-date"}`))
	got := fields(vs)
	assert.Contains(t, got, "title")
	assert.Contains(t, got, "content")
	assert.Contains(t, got, "tags[0]")
	assert.Contains(t, got, "dueDate")
	assert.Len(t, vs, 4)
}

func TestCreateNote_TitleTooLong(t *testing.T) {
	long := make([]rune, TitleMaxLen+1)
	for i := range long {
		long[i] = 'x'
	}
	raw := map[string]interface{}{"title": string(long), "content": "ok"}
	_, vs := CreateNote(raw)
	require.Len(t, vs, 1)
	assert.Equal(t, RuleTooLong, vs[0].Rule)
}

func TestCreateNote_TitleLengthIsRunes(t *testing.T) {
	// 100 multi-byte runes are exactly at the limit
	title := make([]rune, TitleMaxLen)
	for i := range title {
		title[i] = 'ä'
	}
	_, vs := CreateNote(map[string]interface{}{"title": string(title), "content": "ok"})
	assert.Nil(t, vs)
}

func TestCreateNote_DropsStatusFlags(t *testing.T) {
	p, vs := CreateNote(decode(t, `{"title":"a","content":"b","isArchived":true,"isDone":true,"bogus":1}`))
	require.Nil(t, vs)
	assert.Nil(t, p.IsArchived)
	assert.Nil(t, p.IsDone)
}

func TestCreateNote_DueDateParsed(t *testing.T) {
	p, vs := CreateNote(decode(t, `{"title":"a","content":"b","dueDate":"2026-09-01T12:00:00Z"}`))
	require.Nil(t, vs)
	require.True(t, p.DueDateSet)
	require.NotNil(t, p.DueDate)
	assert.Equal(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), p.DueDate.UTC())
}

func TestCreateNote_DueDateExplicitNull(t *testing.T) {
	p, vs := CreateNote(decode(t, `{"title":"a","content":"b","dueDate":null}`))
	require.Nil(t, vs)
	assert.True(t, p.DueDateSet)
	assert.Nil(t, p.DueDate)
}

func TestCreateNote_DueDateWrongType(t *testing.T) {
	_, vs := CreateNote(decode(t, `{"title":"a","content":"b","dueDate":123}`))
	require.Len(t, vs, 1)
	assert.Equal(t, "dueDate", vs[0].Field)
	assert.Equal(t, RuleWrongType, vs[0].Rule)
}

func TestUpdateNote_AllFieldsOptional(t *testing.T) {
	p, vs := UpdateNote(decode(t, `{}`))
	require.Nil(t, vs)
	assert.Nil(t, p.Title)
	assert.Nil(t, p.Content)
	assert.False(t, p.TagsSet)
	assert.False(t, p.DueDateSet)
}

func TestUpdateNote_AcceptsStatusFlags(t *testing.T) {
	p, vs := UpdateNote(decode(t, `{"isArchived":true,"isDone":false}`))
	require.Nil(t, vs)
	require.NotNil(t, p.IsArchived)
	require.NotNil(t, p.IsDone)
	assert.True(t, *p.IsArchived)
	assert.False(t, *p.IsDone)
}

func TestUpdateNote_StatusFlagWrongType(t *testing.T) {
	_, vs := UpdateNote(decode(t, `{"isDone":"yes"}`))
	require.Len(t, vs, 1)
	assert.Equal(t, "isDone", vs[0].Field)
	assert.Equal(t, RuleWrongType, vs[0].Rule)
}

func TestUpdateNote_TooManyTags(t *testing.T) {
	_, vs := UpdateNote(decode(t, `{"tags":["a","b","c","d","e","f","g","h","i","j","k"]}`))
	require.Len(t, vs, 1)
	assert.Equal(t, "tags", vs[0].Field)
	assert.Equal(t, RuleTooMany, vs[0].Rule)
}

func TestUpdateNote_TagTooLong(t *testing.T) {
	_, vs := UpdateNote(decode(t, `{"tags":["aaaaaaaaaaaaaaaaaaaaa"]}`))
	require.Len(t, vs, 1)
	assert.Equal(t, "tags[0]", vs[0].Field)
	assert.Equal(t, RuleTooLong, vs[0].Rule)
}

func TestUpdateNote_TagsWrongType(t *testing.T) {
	_, vs := UpdateNote(decode(t, `{"tags":"work"}`))
	require.Len(t, vs, 1)
	assert.Equal(t, "tags", vs[0].Field)
	assert.Equal(t, RuleWrongType, vs[0].Rule)
}
