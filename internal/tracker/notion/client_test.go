package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-engine/internal/tracker"
)

type fakeAPI struct {
	t        *testing.T
	mu       sync.Mutex
	requests int
	pages    []map[string]any
	created  []map[string]any
	patched  map[string]map[string]any
	cursors  []string
	failWith int
}

func newFakeAPI(t *testing.T) (*fakeAPI, *Client) {
	f := &fakeAPI{t: t, patched: map[string]map[string]any{}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	c := New("secret-token", "db1", Options{BaseURL: srv.URL, RequestsPerSec: 1000, Timeout: time.Second})
	return f, c
}

func titlePage(id, text, url string) map[string]any {
	return map[string]any{
		"object": "page",
		"id":     id,
		"properties": map[string]any{
			"Name": map[string]any{
				"id":   "title",
				"type": "title",
				"title": []any{map[string]any{
					"type":       "text",
					"plain_text": text,
					"text":       map[string]any{"content": text, "link": map[string]any{"url": url}},
				}},
			},
		},
	}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++

	assert.Equal(f.t, "Bearer secret-token", r.Header.Get("Authorization"))
	assert.Equal(f.t, APIVersion, r.Header.Get("Notion-Version"))

	w.Header().Set("Content-Type", "application/json")
	if f.failWith != 0 {
		w.WriteHeader(f.failWith)
		_, _ = w.Write([]byte(`{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`))
		return
	}

	var body map[string]any
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/v1/databases/db1/query":
		cursor, _ := body["start_cursor"].(string)
		f.cursors = append(f.cursors, cursor)
		assert.EqualValues(f.t, 100, body["page_size"])

		// one result per page so paging is exercised
		i := 0
		if cursor != "" {
			i = int(cursor[0] - '0')
		}
		res := map[string]any{"object": "list", "results": []any{}, "has_more": false, "next_cursor": nil}
		if i < len(f.pages) {
			res["results"] = []any{f.pages[i]}
		}
		if i+1 < len(f.pages) {
			res["has_more"] = true
			res["next_cursor"] = string(rune('0' + i + 1))
		}
		_ = json.NewEncoder(w).Encode(res)

	case r.Method == http.MethodPost && r.URL.Path == "/v1/pages":
		f.created = append(f.created, body)
		_ = json.NewEncoder(w).Encode(map[string]any{"object": "page", "id": "new-page"})

	case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/v1/pages/"):
		id := strings.TrimPrefix(r.URL.Path, "/v1/pages/")
		f.patched[id] = body
		_ = json.NewEncoder(w).Encode(map[string]any{"object": "page", "id": id})

	case r.Method == http.MethodPost && r.URL.Path == "/v1/search":
		assert.Equal(f.t, map[string]any{"value": "database", "property": "object"}, body["filter"])
		assert.EqualValues(f.t, 10, body["page_size"])
		_ = json.NewEncoder(w).Encode(map[string]any{"object": "list", "results": []any{
			map[string]any{"object": "database", "id": "db1", "title": []any{
				map[string]any{"type": "text", "plain_text": "Internship "},
				map[string]any{"type": "text", "plain_text": "Tracker"},
			}},
			map[string]any{"object": "database", "id": "db2", "title": []any{}},
		}})

	default:
		f.t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}
}

// dig walks nested JSON objects and single-element arrays.
func dig(t *testing.T, v any, keys ...string) any {
	t.Helper()
	for _, k := range keys {
		if arr, ok := v.([]any); ok {
			require.NotEmpty(t, arr, "at %q", k)
			v = arr[0]
		}
		m, ok := v.(map[string]any)
		require.True(t, ok, "at %q: %v", k, v)
		v = m[k]
	}
	return v
}

func TestFindByLink_Pages(t *testing.T) {
	f, c := newFakeAPI(t)
	f.pages = []map[string]any{
		titlePage("p0", "Other", "https://jobs.example/0"),
		titlePage("p1", "Else", ""),
		titlePage("p2", "Acme", "jobs.example/2"),
	}

	id, found, err := c.FindByLink(context.Background(), "https://jobs.example/2")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "p2", id)
	assert.Equal(t, []string{"", "1", "2"}, f.cursors)
}

func TestFindByLink_Miss(t *testing.T) {
	f, c := newFakeAPI(t)
	f.pages = []map[string]any{titlePage("p0", "Other", "https://jobs.example/0")}

	_, found, err := c.FindByLink(context.Background(), "https://jobs.example/9")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCreateAndUpdatePayload(t *testing.T) {
	f, c := newFakeAPI(t)
	p := tracker.Properties{Name: "Acme", Link: "https://jobs.example/1", Role: "SWE Intern", DateApplied: "2026-09-01", Status: tracker.StatusApplied}

	id, err := c.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "new-page", id)

	require.Len(t, f.created, 1)
	got := f.created[0]
	assert.Equal(t, "db1", dig(t, got, "parent", "database_id"))

	props := got["properties"]
	assert.Equal(t, "Acme", dig(t, props, "Name", "title", "text", "content"))
	assert.Equal(t, "https://jobs.example/1", dig(t, props, "Name", "title", "text", "link", "url"))
	assert.Equal(t, "SWE Intern", dig(t, props, "Role", "rich_text", "text", "content"))
	assert.True(t, strings.HasPrefix(dig(t, props, "Date Applied", "date", "start").(string), "2026-09-01"))
	assert.Equal(t, "Applied", dig(t, props, "Status", "select", "name"))

	require.NoError(t, c.Update(context.Background(), "p7", p))
	require.Contains(t, f.patched, "p7")
	assert.Equal(t, props, f.patched["p7"]["properties"])
}

func TestCreate_RejectsBadDate(t *testing.T) {
	f, c := newFakeAPI(t)

	_, err := c.Create(context.Background(), tracker.Properties{Name: "Acme", DateApplied: "Sept 1"})
	assert.ErrorContains(t, err, "date applied")
	assert.Zero(t, f.requests)
}

func TestUpsertThroughNotion(t *testing.T) {
	f, c := newFakeAPI(t)
	f.pages = []map[string]any{titlePage("p0", "Acme", "https://jobs.example/1")}
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	action, id, err := tracker.Upsert(context.Background(), c, tracker.Job{Company: "Acme", URL: "jobs.example/1", Role: "SWE"}, today)
	require.NoError(t, err)
	assert.Equal(t, tracker.ActionUpdated, action)
	assert.Equal(t, "p0", id)

	action, id, err = tracker.Upsert(context.Background(), c, tracker.Job{Company: "Beta", URL: "jobs.example/2", Role: "PM"}, today)
	require.NoError(t, err)
	assert.Equal(t, tracker.ActionCreated, action)
	assert.Equal(t, "new-page", id)
}

func TestAPIError(t *testing.T) {
	f, c := newFakeAPI(t)
	f.failWith = http.StatusUnauthorized

	_, _, err := c.FindByLink(context.Background(), "https://x")

	var apiErr *notionapi.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.EqualValues(t, "unauthorized", apiErr.Code)
	assert.Equal(t, "API token is invalid.", apiErr.Message)
}

func TestListDatabases(t *testing.T) {
	_, c := newFakeAPI(t)

	dbs, err := c.ListDatabases(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Database{{ID: "db1", Title: "Internship Tracker"}, {ID: "db2", Title: ""}}, dbs)
}

func TestTitleLink_FallsBackToHref(t *testing.T) {
	assert.Equal(t, "https://a", titleLink([]notionapi.RichText{{PlainText: "x", Href: " https://a "}}))
	assert.Equal(t, "https://b", titleLink([]notionapi.RichText{{Text: &notionapi.Text{Content: "x", Link: &notionapi.Link{Url: "https://b"}}}}))
	assert.Equal(t, "", titleLink(nil))
}

func TestLimiterHonoursContext(t *testing.T) {
	f, c := newFakeAPI(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListDatabases(ctx)
	assert.Error(t, err)
	assert.Zero(t, f.requests)
}
