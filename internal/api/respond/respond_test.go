package respond

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/notekit/notekit/internal/model"
	"github.com/notekit/notekit/internal/validate"
)

func TestWritePageKeepsEmptyDataArray(t *testing.T) {
	rr := httptest.NewRecorder()
	WritePage(rr, &model.NotePage{Items: []*model.Note{}, Total: 3, Limit: 0, Offset: 0, HasMore: true})

	body := rr.Body.String()
	if !strings.Contains(body, `"data":[]`) {
		t.Fatalf("empty listing must serialize data as [], got %s", body)
	}
	if !strings.Contains(body, `"total":3`) {
		t.Fatalf("expected total in pagination, got %s", body)
	}
}

func TestWriteViolationsBody(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteViolations(rr, validate.Violations{{Field: "title", Rule: validate.RuleRequired, Message: "title is required"}})

	if rr.Code != 400 {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"success":false`) || !strings.Contains(body, `"field":"title"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}
