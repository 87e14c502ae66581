package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/jobbox/jobbox-api/internal/mocks"
	"github.com/jobbox/jobbox-api/internal/service"
)

// routerMocks bundles the repository mocks behind a fully wired router.
type routerMocks struct {
	jobs  *mocks.MockJobRepository
	users *mocks.MockUserRepository
	apps  *mocks.MockApplicationRepository
	saved *mocks.MockSavedJobRepository
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter wires the real services and router on top of gomock
// repositories so tests exercise the full request path.
func newTestRouter(t *testing.T) (http.Handler, *routerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &routerMocks{
		jobs:  mocks.NewMockJobRepository(ctrl),
		users: mocks.NewMockUserRepository(ctrl),
		apps:  mocks.NewMockApplicationRepository(ctrl),
		saved: mocks.NewMockSavedJobRepository(ctrl),
	}

	logger := testLogger()
	router := NewRouter(RouterServices{
		Jobs:         service.NewJobService(service.JobServiceOptions{Jobs: m.jobs, Logger: logger}),
		Users:        service.NewUserService(m.users),
		Applications: service.NewApplicationService(m.apps),
		SavedJobs:    service.NewSavedJobService(m.saved),
		PageMaxLimit: 100,
		Logger:       logger,
	})
	return router, m
}

// doRequest serves a request through the router, JSON-encoding body when
// it is non-nil, and returns the recorder.
func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes the recorder body into dst.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
}
