package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/permute/pkg/enumstore"
	"github.com/matzehuels/permute/pkg/pipeline"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()
	logger := log.New(io.Discard)
	s := New(pipeline.NewRunner(nil, logger), enumstore.NewMemStore(), logger)
	return s.Router()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[errorBody](t, rec).Error.Code
}

func TestHealthz(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz status = %d, want 200", rec.Code)
	}

	body := decodeBody[map[string]string](t, rec)
	if body["status"] != "ok" {
		t.Errorf("healthz status = %q, want ok", body["status"])
	}
	if body["version"] == "" {
		t.Error("healthz response missing version")
	}
}

func TestPermutations_HeapOrder(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/permutations", permutationsRequest{
		Elements: []string{"a", "b", "c"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	resp := decodeBody[permutationsResponse](t, rec)
	if resp.Order != "heap" {
		t.Errorf("order = %q, want heap", resp.Order)
	}
	if resp.Count != 6 || len(resp.Permutations) != 6 {
		t.Errorf("count = %d (%d arrangements), want 6", resp.Count, len(resp.Permutations))
	}
	if resp.Truncated {
		t.Error("full enumeration reported as truncated")
	}

	first := resp.Permutations[0]
	if len(first) != 3 || first[0] != "a" || first[1] != "b" || first[2] != "c" {
		t.Errorf("first arrangement = %v, want the input order", first)
	}
}

func TestPermutations_LexOrderWithLimit(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/permutations", permutationsRequest{
		Elements: []string{"a", "b", "c", "d"},
		Order:    "lex",
		Limit:    5,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	resp := decodeBody[permutationsResponse](t, rec)
	if resp.Count != 5 {
		t.Errorf("count = %d, want 5", resp.Count)
	}
	if !resp.Truncated {
		t.Error("limited enumeration should be truncated")
	}
}

func TestPermutations_BadRequests(t *testing.T) {
	h := testServer(t)

	tests := []struct {
		name     string
		body     any
		wantCode string
	}{
		{
			name:     "unknown order",
			body:     permutationsRequest{Elements: []string{"a"}, Order: "random"},
			wantCode: "INVALID_ORDER",
		},
		{
			name:     "too many elements",
			body:     permutationsRequest{Elements: make([]string, 17)},
			wantCode: "SEQUENCE_TOO_LONG",
		},
		{
			name:     "negative limit",
			body:     permutationsRequest{Elements: []string{"a"}, Limit: -2},
			wantCode: "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/v1/permutations", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
			if got := errorCode(t, rec); got != tt.wantCode {
				t.Errorf("error code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestPermutations_MalformedJSON(t *testing.T) {
	h := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/permutations", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestEnumerationLifecycle(t *testing.T) {
	h := testServer(t)

	// Create
	rec := doJSON(t, h, http.MethodPost, "/v1/enumerations", createEnumerationRequest{
		Elements: []string{"a", "b", "c"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	created := decodeBody[enumstore.Enumeration](t, rec)
	if created.ID == "" {
		t.Fatal("created enumeration has no ID")
	}
	if created.Total != "6" {
		t.Errorf("total = %q, want 6", created.Total)
	}
	if created.Produced != 0 || created.Done {
		t.Errorf("fresh enumeration: produced = %d, done = %v", created.Produced, created.Done)
	}

	base := "/v1/enumerations/" + created.ID

	// First batch
	rec = doJSON(t, h, http.MethodPost, base+"/next", nextRequest{Count: 2})
	if rec.Code != http.StatusOK {
		t.Fatalf("next status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	batch := decodeBody[nextResponse](t, rec)
	if len(batch.Arrangements) != 2 || batch.Produced != 2 || batch.Done {
		t.Errorf("first batch: %d arrangements, produced %d, done %v; want 2, 2, false",
			len(batch.Arrangements), batch.Produced, batch.Done)
	}

	// Cursor persisted
	rec = doJSON(t, h, http.MethodGet, base, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
	cursor := decodeBody[enumstore.Enumeration](t, rec)
	if cursor.Produced != 2 {
		t.Errorf("stored cursor produced = %d, want 2", cursor.Produced)
	}

	// Drain the walk
	rec = doJSON(t, h, http.MethodPost, base+"/next", nextRequest{Count: 10})
	batch = decodeBody[nextResponse](t, rec)
	if len(batch.Arrangements) != 4 || !batch.Done || batch.Produced != 6 {
		t.Errorf("drain batch: %d arrangements, produced %d, done %v; want 4, 6, true",
			len(batch.Arrangements), batch.Produced, batch.Done)
	}

	// A drained walk keeps answering, with an empty batch
	rec = doJSON(t, h, http.MethodPost, base+"/next", nextRequest{Count: 1})
	batch = decodeBody[nextResponse](t, rec)
	if len(batch.Arrangements) != 0 || !batch.Done {
		t.Errorf("post-done batch: %d arrangements, done %v; want 0, true",
			len(batch.Arrangements), batch.Done)
	}

	// Delete, then the walk is gone
	rec = doJSON(t, h, http.MethodDelete, base, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
	rec = doJSON(t, h, http.MethodGet, base, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
	if got := errorCode(t, rec); got != "ENUMERATION_NOT_FOUND" {
		t.Errorf("error code = %q, want ENUMERATION_NOT_FOUND", got)
	}
}

func TestEnumeration_ResumesMidWalk(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/enumerations", createEnumerationRequest{
		Elements: []string{"b", "a", "c"},
	})
	created := decodeBody[enumstore.Enumeration](t, rec)

	// Starting mid-walk, only the suffix of the lexical order remains:
	// [b a c], [b c a], [c a b], [c b a].
	rec = doJSON(t, h, http.MethodPost, "/v1/enumerations/"+created.ID+"/next", nextRequest{Count: 10})
	batch := decodeBody[nextResponse](t, rec)
	if len(batch.Arrangements) != 4 {
		t.Fatalf("batch size = %d, want 4", len(batch.Arrangements))
	}
	want := [][]string{
		{"b", "a", "c"},
		{"b", "c", "a"},
		{"c", "a", "b"},
		{"c", "b", "a"},
	}
	for i := range want {
		if fmt.Sprint(batch.Arrangements[i]) != fmt.Sprint(want[i]) {
			t.Errorf("arrangement %d = %v, want %v", i, batch.Arrangements[i], want[i])
		}
	}
}

func TestEnumeration_UnknownID(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/enumerations/no-such-id", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestEnumeration_BadCreateRequests(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/enumerations", createEnumerationRequest{
		Elements:   []string{"a"},
		TTLSeconds: -5,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("negative ttl status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/v1/enumerations", createEnumerationRequest{
		Elements: make([]string, 17),
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("oversized sequence status = %d, want 400", rec.Code)
	}
}

func TestEnumeration_BatchTooLarge(t *testing.T) {
	h := testServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/enumerations", createEnumerationRequest{
		Elements: []string{"a", "b"},
	})
	created := decodeBody[enumstore.Enumeration](t, rec)

	rec = doJSON(t, h, http.MethodPost, "/v1/enumerations/"+created.ID+"/next", nextRequest{Count: 10001})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
