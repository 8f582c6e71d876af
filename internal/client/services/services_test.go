package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/jobboard/internal/client/api"
	"github.com/dmitrijs2005/jobboard/internal/client/credentials"
	"github.com/dmitrijs2005/jobboard/internal/logging"
	"github.com/stretchr/testify/require"
)

// request is what the stub API saw.
type request struct {
	Method string
	Path   string
	Body   map[string]any
	Auth   string
}

// stubAPI serves canned responses keyed by "METHOD /path" and records every
// request it receives.
type stubAPI struct {
	t         *testing.T
	srv       *httptest.Server
	mu        sync.Mutex
	responses map[string]stubResponse
	seen      []request
}

type stubResponse struct {
	status int
	body   string
}

func newStubAPI(t *testing.T) *stubAPI {
	t.Helper()
	s := &stubAPI{t: t, responses: map[string]stubResponse{}}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *stubAPI) on(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[method+" "+path] = stubResponse{status: status, body: body}
}

func (s *stubAPI) serve(w http.ResponseWriter, r *http.Request) {
	req := request{Method: r.Method, Path: r.URL.Path, Auth: r.Header.Get("Authorization")}
	if b, _ := io.ReadAll(r.Body); len(b) > 0 {
		_ = json.Unmarshal(b, &req.Body)
	}
	s.mu.Lock()
	s.seen = append(s.seen, req)
	resp, ok := s.responses[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Cannot `+r.Method+` `+r.URL.Path+`"}`)
		return
	}
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func (s *stubAPI) client(credential string) *api.Client {
	return api.NewClient(s.srv.URL, "test-key", credentials.NewMemoryStore(credential), logging.Nop())
}

func (s *stubAPI) requests() []request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]request(nil), s.seen...)
}

func (s *stubAPI) last() request {
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(s.t, s.seen)
	return s.seen[len(s.seen)-1]
}
