// Package validate gates externally supplied note payloads before they reach
// the store. It parses an untyped JSON object against the create or update
// schema and returns either a normalized payload or the full list of
// violations, one per failing field.
package validate

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-openapi/strfmt"

	"github.com/notekit/notekit/internal/model"
)

const (
	TitleMaxLen   = 100
	ContentMaxLen = 1000
	TagMaxLen     = 20
	MaxTags       = 10
)

// Rule names carried in violation entries.
const (
	RuleRequired  = "required"
	RuleTooShort  = "too_short"
	RuleTooLong   = "too_long"
	RuleWrongType = "wrong_type"
	RuleTooMany   = "too_many"
	RuleMalformed = "malformed_datetime"
)

// Violation names one failing field and the rule it violated.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Violations is the complete list of failures for a payload. Callers need
// every entry to build a single error response, so checkers never stop at
// the first failure.
type Violations []Violation

func (v *Violations) add(field, rule, format string, args ...interface{}) {
	*v = append(*v, Violation{Field: field, Rule: rule, Message: fmt.Sprintf(format, args...)})
}

// CreateNote validates a create payload: title and content are required,
// tags default to an empty list. Status flags are not part of the create
// schema and are dropped like any other unrecognized field.
func CreateNote(raw map[string]interface{}) (*model.NotePayload, Violations) {
	var vs Violations
	p := &model.NotePayload{}

	p.Title = checkText(raw, "title", TitleMaxLen, true, &vs)
	p.Content = checkText(raw, "content", ContentMaxLen, true, &vs)
	p.Tags, p.TagsSet = checkTags(raw, &vs)
	p.DueDate, p.DueDateSet = checkDueDate(raw, &vs)

	if !p.TagsSet {
		p.Tags = []string{}
		p.TagsSet = true
	}
	if len(vs) > 0 {
		return nil, vs
	}
	return p, nil
}

// UpdateNote validates a partial-update payload: every field is optional and
// the schema additionally accepts the isArchived and isDone booleans.
func UpdateNote(raw map[string]interface{}) (*model.NotePayload, Violations) {
	var vs Violations
	p := &model.NotePayload{}

	p.Title = checkText(raw, "title", TitleMaxLen, false, &vs)
	p.Content = checkText(raw, "content", ContentMaxLen, false, &vs)
	p.Tags, p.TagsSet = checkTags(raw, &vs)
	p.DueDate, p.DueDateSet = checkDueDate(raw, &vs)
	p.IsArchived = checkBool(raw, "isArchived", &vs)
	p.IsDone = checkBool(raw, "isDone", &vs)

	if len(vs) > 0 {
		return nil, vs
	}
	return p, nil
}

// checkText validates a 1..max character string field. Character counts are
// rune counts, not bytes.
func checkText(raw map[string]interface{}, field string, max int, required bool, vs *Violations) *string {
	v, ok := raw[field]
	if !ok || v == nil {
		if required {
			vs.add(field, RuleRequired, "%s is required", field)
		}
		return nil
	}
	s, ok := v.(string)
	if !ok {
		vs.add(field, RuleWrongType, "%s must be a string", field)
		return nil
	}
	switch n := utf8.RuneCountInString(s); {
	case n < 1:
		vs.add(field, RuleTooShort, "%s must not be empty", field)
		return nil
	case n > max:
		vs.add(field, RuleTooLong, "%s exceeds %d characters", field, max)
		return nil
	}
	return &s
}

func checkTags(raw map[string]interface{}, vs *Violations) ([]string, bool) {
	v, ok := raw["tags"]
	if !ok || v == nil {
		return nil, false
	}
	arr, ok := v.([]interface{})
	if !ok {
		vs.add("tags", RuleWrongType, "tags must be an array of strings")
		return nil, false
	}
	if len(arr) > MaxTags {
		vs.add("tags", RuleTooMany, "tags exceeds maximum count of %d", MaxTags)
		return nil, false
	}
	tags := make([]string, 0, len(arr))
	bad := false
	for i, el := range arr {
		s, ok := el.(string)
		if !ok {
			vs.add(fmt.Sprintf("tags[%d]", i), RuleWrongType, "tag must be a string")
			bad = true
			continue
		}
		switch n := utf8.RuneCountInString(s); {
		case n < 1:
			vs.add(fmt.Sprintf("tags[%d]", i), RuleTooShort, "tag must not be empty")
			bad = true
		case n > TagMaxLen:
			vs.add(fmt.Sprintf("tags[%d]", i), RuleTooLong, "tag exceeds %d characters", TagMaxLen)
			bad = true
		default:
			tags = append(tags, s)
		}
	}
	if bad {
		return nil, false
	}
	return tags, true
}

// checkDueDate accepts an ISO-8601 datetime string or an explicit null.
// The second return reports field presence so a merge can distinguish
// "clear the due date" from "leave it alone".
func checkDueDate(raw map[string]interface{}, vs *Violations) (*time.Time, bool) {
	v, ok := raw["dueDate"]
	if !ok {
		return nil, false
	}
	if v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		vs.add("dueDate", RuleWrongType, "dueDate must be an ISO-8601 datetime string or null")
		return nil, false
	}
	dt, err := strfmt.ParseDateTime(s)
	if err != nil {
		vs.add("dueDate", RuleMalformed, "dueDate is not a valid ISO-8601 datetime")
		return nil, false
	}
	t := time.Time(dt)
	return &t, true
}

func checkBool(raw map[string]interface{}, field string, vs *Violations) *bool {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		vs.add(field, RuleWrongType, "%s must be a boolean", field)
		return nil
	}
	return &b
}
