// Package resttest runs an in-memory PostgREST-style backend for tests.
package resttest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Row is a stored record. Timestamps are kept as RFC 3339 strings.
type Row map[string]any

// Request is a request seen by the server.
type Request struct {
	Method     string
	Collection string
	Query      url.Values
	Header     http.Header
}

type failure struct {
	status  int
	message string
}

type Server struct {
	*httptest.Server

	apiKey string

	mu       sync.Mutex
	now      func() time.Time
	tables   map[string][]Row
	requests []Request
	failures map[string]failure
}

// New starts a server that accepts requests carrying apiKey.
func New(apiKey string) *Server {
	s := &Server{
		apiKey:   apiKey,
		now:      time.Now,
		tables:   map[string][]Row{},
		failures: map[string]failure{},
	}

	const pattern = "/rest/v1/{collection}"

	r := chi.NewRouter()
	rr := r.With(s.record, s.authenticate, s.injectFailures)
	rr.Get(pattern, s.handleSelect)
	rr.Post(pattern, s.handleInsert)
	rr.Patch(pattern, s.handleUpdate)
	rr.Delete(pattern, s.handleDelete)

	s.Server = httptest.NewServer(r)
	return s
}

// SetNow replaces the clock used for created_at and updated_at.
func (s *Server) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Seed stores row in collection, filling id and created_at when missing.
// time.Time values are converted to backend timestamps.
func (s *Server) Seed(collection string, row Row) Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := normalize(row)
	if _, ok := stored["id"]; !ok {
		stored["id"] = uuid.NewString()
	}
	if _, ok := stored["created_at"]; !ok {
		stored["created_at"] = timestamp(s.now())
	}
	s.tables[collection] = append(s.tables[collection], stored)
	return copyRow(stored)
}

// Rows returns a copy of the rows of collection.
func (s *Server) Rows(collection string) []Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Row, 0, len(s.tables[collection]))
	for _, r := range s.tables[collection] {
		out = append(out, copyRow(r))
	}
	return out
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// CountRequests counts requests with method against collection.
func (s *Server) CountRequests(method, collection string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Collection == collection {
			n++
		}
	}
	return n
}

// FailWith makes every method request against collection fail with status.
func (s *Server) FailWith(method, collection string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+collection] = failure{status: status, message: message}
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:     r.Method,
			Collection: chi.URLParam(r, "collection"),
			Query:      r.URL.Query(),
			Header:     r.Header.Clone(),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != s.apiKey || !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		f, ok := s.failures[r.Method+" "+chi.URLParam(r, "collection")]
		s.mu.Unlock()
		if ok {
			writeError(w, f.status, f.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	query := r.URL.Query()

	s.mu.Lock()
	rows := s.match(collection, query)
	s.mu.Unlock()

	if order := query.Get("order"); order != "" {
		column, dir, _ := strings.Cut(order, ".")
		sort.SliceStable(rows, func(i, j int) bool {
			c := compare(rows[i][column], rows[j][column])
			if dir == "desc" {
				return c > 0
			}
			return c < 0
		})
	}

	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit >= 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, project(row, query.Get("select")))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	rows, err := decodeRows(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := make([]Row, 0, len(rows))
	for _, row := range rows {
		if collection == "users" && s.passcodeTaken(row["passcode"], nil) {
			writeError(w, http.StatusConflict, `duplicate key value violates unique constraint "users_passcode_key"`)
			return
		}

		stored := normalize(row)
		now := timestamp(s.now())
		stored["id"] = uuid.NewString()
		stored["created_at"] = now
		if collection == "notes" {
			stored["updated_at"] = now
		}
		s.tables[collection] = append(s.tables[collection], stored)
		inserted = append(inserted, copyRow(stored))
	}

	writeJSON(w, http.StatusCreated, inserted)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	rows, err := decodeRows(r)
	if err != nil || len(rows) != 1 {
		writeError(w, http.StatusBadRequest, "expected a single object")
		return
	}
	patch := normalize(rows[0])

	s.mu.Lock()
	defer s.mu.Unlock()

	if collection == "users" && s.passcodeTaken(patch["passcode"], r.URL.Query()) {
		writeError(w, http.StatusConflict, `duplicate key value violates unique constraint "users_passcode_key"`)
		return
	}

	updated := []Row{}
	for _, row := range s.tables[collection] {
		if !matches(row, r.URL.Query()) {
			continue
		}
		for k, v := range patch {
			row[k] = v
		}
		updated = append(updated, copyRow(row))
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := s.remove(collection, func(row Row) bool { return matches(row, r.URL.Query()) })

	// users cascade to their notes and access logs
	if collection == "users" {
		for _, u := range deleted {
			id := u["id"]
			for _, child := range []string{"notes", "access_logs"} {
				s.remove(child, func(row Row) bool { return row["user_id"] == id })
			}
		}
	}

	writeJSON(w, http.StatusOK, deleted)
}

func (s *Server) match(collection string, query url.Values) []Row {
	var out []Row
	for _, row := range s.tables[collection] {
		if matches(row, query) {
			out = append(out, copyRow(row))
		}
	}
	return out
}

func (s *Server) remove(collection string, pred func(Row) bool) []Row {
	var kept, removed []Row
	for _, row := range s.tables[collection] {
		if pred(row) {
			removed = append(removed, row)
		} else {
			kept = append(kept, row)
		}
	}
	s.tables[collection] = kept
	if removed == nil {
		removed = []Row{}
	}
	return removed
}

// passcodeTaken reports whether a user outside the rows selected by except
// holds passcode.
func (s *Server) passcodeTaken(passcode any, except url.Values) bool {
	if passcode == nil {
		return false
	}
	for _, u := range s.tables["users"] {
		if except != nil && matches(u, except) {
			continue
		}
		if u["passcode"] == passcode {
			return true
		}
	}
	return false
}

var reserved = map[string]bool{"select": true, "order": true, "limit": true}

func matches(row Row, query url.Values) bool {
	for column, values := range query {
		if reserved[column] {
			continue
		}
		for _, v := range values {
			op, operand, ok := strings.Cut(v, ".")
			if !ok {
				return false
			}
			c := compare(row[column], operand)
			switch op {
			case "eq":
				if fmt.Sprint(row[column]) != operand {
					return false
				}
			case "gte":
				if c < 0 {
					return false
				}
			case "lt":
				if c >= 0 {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}

// compare orders timestamps chronologically and everything else as strings.
func compare(a, b any) int {
	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	at, aerr := time.Parse(time.RFC3339Nano, as)
	bt, berr := time.Parse(time.RFC3339Nano, bs)
	if aerr == nil && berr == nil {
		return at.Compare(bt)
	}
	return strings.Compare(as, bs)
}

func project(row Row, sel string) Row {
	if sel == "" || sel == "*" {
		return row
	}
	out := Row{}
	for _, col := range strings.Split(sel, ",") {
		if v, ok := row[col]; ok {
			out[col] = v
		}
	}
	return out
}

func decodeRows(r *http.Request) ([]Row, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}

	var many []Row
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}

	var one Row
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return []Row{one}, nil
}

func normalize(row Row) Row {
	out := Row{}
	for k, v := range row {
		if t, ok := v.(time.Time); ok {
			v = timestamp(t)
		}
		out[k] = v
	}
	return out
}

func copyRow(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
