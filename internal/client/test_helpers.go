package client

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	internalhttp "github.com/fivetwenty-io/jamendo/internal/http"
)

// Test static errors.
var (
	ErrTestConnectionRefused = errors.New("connection refused")
)

const (
	testClientID     = "test-client-id"
	testClientSecret = "test-client-secret"
)

// recordedRequest is what the test server saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
	Header http.Header
}

// recordingServer answers every request with a fixed status and body and
// records the requests it received.
type recordingServer struct {
	*httptest.Server

	mutex    sync.Mutex
	requests []recordedRequest
}

func newRecordingServer(t *testing.T, status int, body string) *recordingServer {
	t.Helper()

	recorder := &recordingServer{}
	recorder.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_ = request.ParseForm()

		recorder.mutex.Lock()
		recorder.requests = append(recorder.requests, recordedRequest{
			Method: request.Method,
			Path:   request.URL.Path,
			Query:  request.URL.Query(),
			Form:   request.PostForm,
			Header: request.Header.Clone(),
		})
		recorder.mutex.Unlock()

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = io.WriteString(writer, body)
	}))
	t.Cleanup(recorder.Close)

	return recorder
}

func (r *recordingServer) last(t *testing.T) recordedRequest {
	t.Helper()

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if len(r.requests) == 0 {
		t.Fatal("no request recorded")
	}

	return r.requests[len(r.requests)-1]
}

func (r *recordingServer) count() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return len(r.requests)
}

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string, opts ...internalhttp.Option) *Client {
	httpClient := internalhttp.NewClient(baseURL, opts...)

	return newClient(httpClient, testClientID, testClientSecret)
}

// failingTransport fails the first failures round trips, then delegates.
type failingTransport struct {
	failures int32
	calls    atomic.Int32
}

func (f *failingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if f.calls.Add(1) <= f.failures {
		return nil, ErrTestConnectionRefused
	}

	return http.DefaultTransport.RoundTrip(req)
}

const okBody = `{"headers":{"status":"success","code":0,"error_message":"","warnings":"","results_count":1},"results":[{"id":"1","name":"Song"}]}`
