package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// CatalogServer is a fake catalog and scheduler API backed by in-memory
// fixtures. It records how often each endpoint was hit.
type CatalogServer struct {
	*httptest.Server

	mu       sync.Mutex
	basic    []domain.CourseSummary
	courses  map[int]domain.Course
	classes  map[int]domain.Class
	hits     map[string]int
	requests []domain.ScheduleRequest

	// Generate answers /api/generate-schedule. The default returns a
	// two-semester plan.
	Generate http.HandlerFunc
	// FailBulkClasses makes /api/classes answer 500.
	FailBulkClasses bool
}

// NewCatalogServer starts a fake API seeded with SampleCatalog.
func NewCatalogServer(t *testing.T) *CatalogServer {
	t.Helper()
	s := &CatalogServer{
		courses: map[int]domain.Course{},
		classes: map[int]domain.Class{},
		hits:    map[string]int{},
	}
	SeedSampleCatalog(s)
	s.Generate = s.defaultGenerate

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/courses/basic", s.handleBasic)
	mux.HandleFunc("GET /api/courses/{id}", s.handleCourse)
	mux.HandleFunc("GET /api/classes", s.handleClasses)
	mux.HandleFunc("GET /api/classes/{id}", s.handleClass)
	mux.HandleFunc("POST /api/generate-schedule", s.handleGenerate)
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// AddCourse registers a full course and its basic row.
func (s *CatalogServer) AddCourse(c domain.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[c.ID] = c
	row := domain.CourseSummary{ID: c.ID, Name: c.Name, Type: c.Type}
	if c.Holokai != nil {
		row.Holokai = *c.Holokai
	}
	s.basic = append(s.basic, row)
}

// AddClass registers a class for /api/classes and /api/classes/{id}.
func (s *CatalogServer) AddClass(c domain.Class) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classes[c.ID] = c
}

// Hits returns how many times path was requested.
func (s *CatalogServer) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// Requests returns every decoded schedule request received so far.
func (s *CatalogServer) Requests() []domain.ScheduleRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ScheduleRequest(nil), s.requests...)
}

func (s *CatalogServer) hit(r *http.Request) {
	s.mu.Lock()
	s.hits[r.URL.Path]++
	s.mu.Unlock()
}

func (s *CatalogServer) handleBasic(w http.ResponseWriter, r *http.Request) {
	s.hit(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, s.basic)
}

func (s *CatalogServer) handleCourse(w http.ResponseWriter, r *http.Request) {
	s.hit(r)
	id, _ := strconv.Atoi(r.PathValue("id"))
	s.mu.Lock()
	c, ok := s.courses[id]
	s.mu.Unlock()
	if !ok {
		http.Error(w, `{"error":"course not found"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, c)
}

func (s *CatalogServer) handleClasses(w http.ResponseWriter, r *http.Request) {
	s.hit(r)
	if s.FailBulkClasses {
		http.Error(w, `{"error":"unavailable"}`, http.StatusInternalServerError)
		return
	}
	s.mu.Lock()
	out := make([]domain.Class, 0, len(s.classes))
	for _, c := range s.classes {
		out = append(out, c)
	}
	s.mu.Unlock()
	writeJSON(w, out)
}

func (s *CatalogServer) handleClass(w http.ResponseWriter, r *http.Request) {
	s.hit(r)
	id, _ := strconv.Atoi(r.PathValue("id"))
	s.mu.Lock()
	c, ok := s.classes[id]
	s.mu.Unlock()
	if !ok {
		http.Error(w, `{"error":"class not found"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, c)
}

func (s *CatalogServer) handleGenerate(w http.ResponseWriter, r *http.Request) {
	s.hit(r)
	body, _ := io.ReadAll(r.Body)
	var req domain.ScheduleRequest
	if err := json.Unmarshal(body, &req); err == nil {
		s.mu.Lock()
		s.requests = append(s.requests, req)
		s.mu.Unlock()
	}
	s.Generate(w, r)
}

func (s *CatalogServer) defaultGenerate(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, domain.ScheduleResponse{Schedule: SampleSchedule()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
