package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/permute/pkg/buildinfo"
	"github.com/matzehuels/permute/pkg/enumstore"
	perrors "github.com/matzehuels/permute/pkg/errors"
	"github.com/matzehuels/permute/pkg/observability"
	"github.com/matzehuels/permute/pkg/pipeline"
)

// maxTTL caps client-chosen enumeration lifetimes.
const maxTTL = 7 * 24 * time.Hour

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// permutationsRequest is the body of POST /v1/permutations.
type permutationsRequest struct {
	Elements []string `json:"elements"`
	Order    string   `json:"order,omitempty"`
	Limit    int      `json:"limit,omitempty"`
	Refresh  bool     `json:"refresh,omitempty"`
}

// permutationsResponse is the body of a successful enumeration.
type permutationsResponse struct {
	Order        string     `json:"order"`
	Count        int        `json:"count"`
	Truncated    bool       `json:"truncated"`
	Permutations [][]string `json:"permutations"`
}

func (s *Server) handlePermutations(w http.ResponseWriter, r *http.Request) {
	var req permutationsRequest
	if !s.decode(w, r, &req) {
		return
	}

	opts := pipeline.Options{
		Elements: req.Elements,
		Order:    req.Order,
		Limit:    req.Limit,
		Refresh:  req.Refresh,
	}
	arr, err := s.runner.Enumerate(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, permutationsResponse{
		Order:        opts.Order,
		Count:        len(arr.Permutations),
		Truncated:    arr.Truncated,
		Permutations: arr.Permutations,
	})
}

// createEnumerationRequest is the body of POST /v1/enumerations.
type createEnumerationRequest struct {
	Elements   []string `json:"elements"`
	TTLSeconds int64    `json:"ttl_seconds,omitempty"`
}

func (s *Server) handleCreateEnumeration(w http.ResponseWriter, r *http.Request) {
	var req createEnumerationRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := perrors.ValidateElements(req.Elements); err != nil {
		s.writeError(w, r, err)
		return
	}

	ttl := enumstore.DefaultTTL
	switch {
	case req.TTLSeconds < 0:
		s.writeError(w, r, perrors.New(perrors.ErrCodeInvalidInput, "ttl_seconds cannot be negative"))
		return
	case req.TTLSeconds > int64(maxTTL/time.Second):
		s.writeError(w, r, perrors.New(perrors.ErrCodeInvalidInput,
			"ttl_seconds too large (max %d)", int64(maxTTL/time.Second)))
		return
	case req.TTLSeconds > 0:
		ttl = time.Duration(req.TTLSeconds) * time.Second
	}

	e := enumstore.New(req.Elements, ttl)
	if err := s.store.Put(r.Context(), e); err != nil {
		s.writeError(w, r, perrors.Wrap(perrors.ErrCodeStorage, err, "storing enumeration"))
		return
	}
	observability.Enumeration().OnCreate(r.Context(), e.ID, len(req.Elements))

	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleGetEnumeration(w http.ResponseWriter, r *http.Request) {
	e, ok := s.getEnumeration(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// getEnumeration loads the cursor named in the URL, writing the error
// response on failure.
func (s *Server) getEnumeration(w http.ResponseWriter, r *http.Request) (*enumstore.Enumeration, bool) {
	id := chi.URLParam(r, "id")
	e, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, enumstore.ErrExpired) {
			observability.Enumeration().OnExpire(r.Context(), id)
		}
		s.writeError(w, r, err)
		return nil, false
	}
	return e, true
}

func (s *Server) handleDeleteEnumeration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, perrors.Wrap(perrors.ErrCodeStorage, err, "deleting enumeration"))
		return
	}
	observability.Enumeration().OnDelete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// nextRequest is the body of POST /v1/enumerations/{id}/next.
type nextRequest struct {
	Count int `json:"count,omitempty"`
}

// nextResponse carries a batch of arrangements and the advanced cursor.
type nextResponse struct {
	ID           string     `json:"id"`
	Arrangements [][]string `json:"arrangements"`
	Produced     uint64     `json:"produced"`
	Total        string     `json:"total"`
	Done         bool       `json:"done"`
}

func (s *Server) handleNextEnumeration(w http.ResponseWriter, r *http.Request) {
	var req nextRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}
	if err := perrors.ValidateBatchSize(req.Count); err != nil {
		s.writeError(w, r, err)
		return
	}

	e, ok := s.getEnumeration(w, r)
	if !ok {
		return
	}

	batch := e.Advance(req.Count)
	if len(batch) > 0 {
		if err := s.store.Put(r.Context(), e); err != nil {
			s.writeError(w, r, perrors.Wrap(perrors.ErrCodeStorage, err, "persisting cursor"))
			return
		}
	}
	observability.Enumeration().OnAdvance(r.Context(), e.ID, len(batch), e.Done)
	if batch == nil {
		batch = [][]string{} // keep the JSON field an array, not null
	}

	writeJSON(w, http.StatusOK, nextResponse{
		ID:           e.ID,
		Arrangements: batch,
		Produced:     e.Produced,
		Total:        e.Total,
		Done:         e.Done,
	})
}

// decode reads a JSON request body into v, writing a 400 on failure. An
// empty body leaves v at its zero value so every field falls back to its
// default.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, r, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "decoding request body"))
		return false
	}
	return true
}
