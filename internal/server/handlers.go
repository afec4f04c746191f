package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/format"
	"github.com/cristianoliveira/jobdeck/internal/query"
	"github.com/cristianoliveira/jobdeck/internal/search"
	"github.com/cristianoliveira/jobdeck/internal/storage"
	"github.com/cristianoliveira/jobdeck/internal/storage/sqlite"
	"github.com/cristianoliveira/jobdeck/internal/version"
	"github.com/go-chi/chi/v5"
)

const recentRunsLimit = 10

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, struct {
		Status  string       `json:"status"`
		Version version.Info `json:"version"`
	}{
		Status:  "ok",
		Version: version.Get(),
	})
}

// list returns one page of a collection. Query parameters: q, filter
// (field:value, repeatable), sort, page and page_size. Values the collection
// does not support are ignored.
func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	kind, schema, ok := kindParam(w, r)
	if !ok {
		return
	}

	items, err := s.store.LoadItems(r.Context(), kind)
	if err != nil {
		s.logger.Error("load items failed", "kind", kind.String(), "error", err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	provider := s.provider(schema)
	st := stateFromQuery(schema, r.URL.Query(), s.config.PageSize, provider)
	view, st := query.Recompute(items, schema, st, provider)

	s.writeJSON(w, http.StatusOK, format.NewViewDocument(kind, view, st))
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	kind, _, ok := kindParam(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	it, err := s.store.GetItem(r.Context(), kind, id)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, format.ItemDocument{
		ID:         it.ID,
		Score:      it.Score,
		Tier:       domain.ScoreTierFor(it.Score),
		Attributes: it.Attributes,
	})
}

// updateStatus sets the status of one item.
func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	kind, _, ok := kindParam(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = s.store.UpdateStatus(r.Context(), kind, id, strings.TrimSpace(payload.Status))
	switch {
	case err == nil:
		s.logger.Info("status updated", "kind", kind.String(), "id", id, "status", payload.Status)
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, storage.ErrInvalidItemID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrItemNotFound):
		http.NotFound(w, r)
	default:
		s.logger.Error("update status failed", "kind", kind.String(), "id", id, "error", err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.Counts(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	runs, err := s.store.ImportRuns(r.Context(), recentRunsLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []sqlite.ImportRun{}
	}
	s.writeJSON(w, http.StatusOK, struct {
		Counts map[domain.Kind]int `json:"counts"`
		Runs   []sqlite.ImportRun  `json:"recent_imports"`
	}{
		Counts: counts,
		Runs:   runs,
	})
}

func (s *Server) provider(schema domain.Schema) search.Provider {
	p, err := search.New(s.config.SearchMode, search.ForSchema(schema))
	if err != nil {
		return search.NewSubstringProvider(search.ForSchema(schema))
	}
	return p
}

// kindParam resolves the {kind} URL parameter, answering 404 when unknown.
func kindParam(w http.ResponseWriter, r *http.Request) (domain.Kind, domain.Schema, bool) {
	kind, err := domain.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.NotFound(w, r)
		return "", domain.Schema{}, false
	}
	return kind, domain.MustSchema(kind), true
}

// stateFromQuery builds a query state from URL parameters. Malformed values
// are dropped rather than rejected.
func stateFromQuery(schema domain.Schema, values url.Values, pageSize int, provider search.Provider) query.State {
	st := query.NewState(schema, pageSize)

	if size, err := strconv.Atoi(values.Get("page_size")); err == nil && size > 0 {
		st = st.WithPageSize(size)
	}
	if term := strings.TrimSpace(values.Get("q")); term != "" {
		if v, ok := provider.(search.Validator); !ok || v.Validate(term) == nil {
			st = st.WithSearch(term)
		}
	}
	for _, raw := range values["filter"] {
		field, value, ok := strings.Cut(raw, ":")
		field, value = strings.TrimSpace(field), strings.TrimSpace(value)
		if !ok || value == "" || !schema.IsFilterField(field) {
			continue
		}
		if current, set := st.Filters[field]; set && strings.EqualFold(current, value) {
			continue
		}
		st = st.WithFilterToggled(field, value)
	}
	if key, err := domain.ParseSortKey(values.Get("sort")); err == nil && schema.SupportsSort(key) {
		st = st.WithSort(key)
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		st = st.WithPage(page)
	}
	return st
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("write response failed", "error", err.Error())
	}
}
