package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/zefilho/snack-pos/backend"
)

// newTestBackend spins up a fake remote store and returns a client bound to
// it. Tests hand in only the routes they expect to be hit.
func newTestBackend(t *testing.T, handler http.Handler) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, 5*time.Second)
}

// unusedBackend fails the test on any remote call. It backs tests that must
// short-circuit locally before reaching the store.
func unusedBackend(t *testing.T) *backend.Client {
	t.Helper()
	return newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected remote call: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}))
}
