package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

func newClient(api string) *resty.Client {
	return resty.New().
		SetBaseURL(api).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
}

// writeResponse copies a successful response body to out, or turns a non-2xx
// status into an error carrying the server's message.
func writeResponse(resp *resty.Response, err error, out io.Writer) error {
	if err != nil {
		return err
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	if len(resp.Body()) > 0 {
		_, err = out.Write(resp.Body())
	}
	return err
}

func runList(api, query string, tags []string, archived, done string, limit, offset int, out io.Writer) error {
	req := newClient(api).R()
	if query != "" {
		req.SetQueryParam("q", query)
	}
	if len(tags) > 0 {
		req.SetQueryParam("tags", strings.Join(tags, ","))
	}
	if archived != "" {
		req.SetQueryParam("isArchived", archived)
	}
	if done != "" {
		req.SetQueryParam("isDone", done)
	}
	if limit >= 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	if offset >= 0 {
		req.SetQueryParam("offset", strconv.Itoa(offset))
	}
	resp, err := req.Get("/notes")
	return writeResponse(resp, err, out)
}

func runCreate(api, title, content string, tags []string, due string, out io.Writer) error {
	payload := map[string]interface{}{
		"title":   title,
		"content": content,
	}
	if len(tags) > 0 {
		payload["tags"] = tags
	}
	if due != "" {
		payload["dueDate"] = due
	}
	resp, err := newClient(api).R().SetBody(payload).Post("/notes")
	return writeResponse(resp, err, out)
}

func runUpdate(api string, id int64, rawJSON string, out io.Writer) error {
	if !json.Valid([]byte(rawJSON)) {
		return fmt.Errorf("payload is not valid JSON")
	}
	resp, err := newClient(api).R().
		SetBody([]byte(rawJSON)).
		Put(fmt.Sprintf("/notes/%d", id))
	return writeResponse(resp, err, out)
}

func runGet(api string, id int64, out io.Writer) error {
	resp, err := newClient(api).R().Get(fmt.Sprintf("/notes/%d", id))
	return writeResponse(resp, err, out)
}

func runDelete(api string, id int64, out io.Writer) error {
	resp, err := newClient(api).R().Delete(fmt.Sprintf("/notes/%d", id))
	if err == nil && resp.StatusCode() == http.StatusNoContent {
		_, werr := fmt.Fprintf(out, "deleted note %d\n", id)
		return werr
	}
	return writeResponse(resp, err, out)
}

// toggleRunner returns a runner for one of the PATCH status routes.
func toggleRunner(action string) func(api string, id int64, out io.Writer) error {
	return func(api string, id int64, out io.Writer) error {
		resp, err := newClient(api).R().Patch(fmt.Sprintf("/notes/%d/%s", id, action))
		return writeResponse(resp, err, out)
	}
}
