package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"testing/iotest"

	jamendohttp "github.com/fivetwenty-io/jamendo/internal/http"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConnectionReset = errors.New("connection reset by peer")

// MockLogger for testing.
type MockLogger struct {
	mutex sync.Mutex
	logs  []map[string]interface{}
}

func (l *MockLogger) add(level, msg string, fields map[string]interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

// flakyTransport fails the first failures round trips, then delegates.
type flakyTransport struct {
	failures int32
	calls    atomic.Int32
	next     http.RoundTripper
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	call := f.calls.Add(1)
	if call <= f.failures {
		return nil, errConnectionReset
	}

	return f.next.RoundTrip(req)
}

// brokenBodyTransport answers with a response whose body fails to read.
type brokenBodyTransport struct{}

func (brokenBodyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(iotest.ErrReader(errConnectionReset)),
		Request:    req,
	}, nil
}

func okServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(writer, `{"headers":{"code":0}}`)
	}))
	t.Cleanup(server.Close)

	return server
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("GET with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v3.0/tracks", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "rock pop", request.URL.Query().Get("tags"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.NotEmpty(t, request.Header.Get("User-Agent"))

			_, _ = io.WriteString(writer, `{"headers":{"code":0},"results":[]}`)
		}))
		defer server.Close()

		client := jamendohttp.NewClient(server.URL + "/v3.0")

		resp, err := client.Get(context.Background(), "/tracks", url.Values{"tags": []string{"rock pop"}})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, resp.Attempts)
		assert.JSONEq(t, `{"headers":{"code":0},"results":[]}`, string(resp.Body))
	})

	t.Run("POST form encodes params in the body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))
			assert.Empty(t, request.URL.RawQuery)

			err := request.ParseForm()
			assert.NoError(t, err)
			assert.Equal(t, "123", request.PostForm.Get("track_id"))
			assert.Equal(t, "tok", request.PostForm.Get("access_token"))

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := jamendohttp.NewClient(server.URL)

		resp, err := client.PostForm(context.Background(), "/setuser/like", url.Values{
			"track_id":     []string{"123"},
			"access_token": []string{"tok"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("error status is not a Go error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(writer, `{"headers":{"code":5,"error_message":"invalid client id"}}`)
		}))
		defer server.Close()

		client := jamendohttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/tracks", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "invalid client id")
	})

	t.Run("final URL after redirects", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/oauth/authorize", func(writer http.ResponseWriter, request *http.Request) {
			http.Redirect(writer, request, "/login?state=abc", http.StatusFound)
		})
		mux.HandleFunc("/login", func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		client := jamendohttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/oauth/authorize", url.Values{"client_id": []string{"id"}})
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/login?state=abc", resp.URL)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "my-agent", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := jamendohttp.NewClient(server.URL, jamendohttp.WithUserAgent("my-agent"))

		resp, err := client.Do(context.Background(), &jamendohttp.Request{
			Method:  http.MethodGet,
			Path:    "/tracks",
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := okServer(t)

		logger := &MockLogger{}
		client := jamendohttp.NewClient(server.URL, jamendohttp.WithLogger(logger), jamendohttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/tracks", nil)
		require.NoError(t, err)

		// Should have logged request and response
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("body read failure after a response is not a transport error", func(t *testing.T) {
		t.Parallel()

		client := jamendohttp.NewClient("http://api.test/v3.0", jamendohttp.WithTransport(brokenBodyTransport{}))

		resp, err := client.Get(context.Background(), "/tracks", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
		require.ErrorIs(t, err, errConnectionReset)
		assert.False(t, jamendo.IsTransportError(err))
		assert.Contains(t, err.Error(), "reading response body")
	})

	t.Run("without debug nothing is logged", func(t *testing.T) {
		t.Parallel()

		server := okServer(t)

		logger := &MockLogger{}
		client := jamendohttp.NewClient(server.URL, jamendohttp.WithLogger(logger))

		_, err := client.Get(context.Background(), "/tracks", nil)
		require.NoError(t, err)
		assert.Empty(t, logger.logs)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()

	t.Run("retries once after a transport failure", func(t *testing.T) {
		t.Parallel()

		server := okServer(t)
		transport := &flakyTransport{failures: 1, next: http.DefaultTransport}
		logger := &MockLogger{}

		client := jamendohttp.NewClient(server.URL,
			jamendohttp.WithRetry(true),
			jamendohttp.WithTransport(transport),
			jamendohttp.WithLogger(logger),
		)

		resp, err := client.Get(context.Background(), "/tracks", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 2, resp.Attempts)
		assert.Equal(t, int32(2), transport.calls.Load())

		require.Len(t, logger.logs, 1)
		assert.Equal(t, "warn", logger.logs[0]["level"])
		assert.Equal(t, "network error, retry", logger.logs[0]["msg"])
	})

	t.Run("gives up after the single retry", func(t *testing.T) {
		t.Parallel()

		server := okServer(t)
		transport := &flakyTransport{failures: 5, next: http.DefaultTransport}

		client := jamendohttp.NewClient(server.URL, jamendohttp.WithRetry(true), jamendohttp.WithTransport(transport))

		resp, err := client.Get(context.Background(), "/tracks", url.Values{"client_id": []string{"secret-id"}})
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, int32(2), transport.calls.Load())

		var transportErr *jamendo.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, 2, transportErr.Attempts)
		assert.Equal(t, http.MethodGet, transportErr.Method)
		assert.NotContains(t, transportErr.URL, "secret-id")
		assert.ErrorIs(t, err, errConnectionReset)
	})

	t.Run("does not retry when disabled", func(t *testing.T) {
		t.Parallel()

		server := okServer(t)
		transport := &flakyTransport{failures: 1, next: http.DefaultTransport}

		client := jamendohttp.NewClient(server.URL, jamendohttp.WithTransport(transport))

		_, err := client.Get(context.Background(), "/tracks", nil)
		require.Error(t, err)
		assert.True(t, jamendo.IsTransportError(err))
		assert.Equal(t, int32(1), transport.calls.Load())

		var transportErr *jamendo.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, 1, transportErr.Attempts)
	})

	t.Run("does not retry on server errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := jamendohttp.NewClient(server.URL, jamendohttp.WithRetry(true))

		resp, err := client.Get(context.Background(), "/tracks", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retried POST resends the body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			err := request.ParseForm()
			assert.NoError(t, err)
			assert.Equal(t, "42", request.PostForm.Get("artist_id"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		transport := &flakyTransport{failures: 1, next: http.DefaultTransport}
		client := jamendohttp.NewClient(server.URL, jamendohttp.WithRetry(true), jamendohttp.WithTransport(transport))

		resp, err := client.PostForm(context.Background(), "/setuser/fan", url.Values{"artist_id": []string{"42"}})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Attempts)
	})

	t.Run("cancelled context is not retried", func(t *testing.T) {
		t.Parallel()

		server := okServer(t)
		transport := &flakyTransport{failures: 5, next: http.DefaultTransport}
		client := jamendohttp.NewClient(server.URL, jamendohttp.WithRetry(true), jamendohttp.WithTransport(transport))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Get(ctx, "/tracks", nil)
		require.Error(t, err)
		assert.True(t, jamendo.IsTransportError(err))
	})
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "interceptor", request.Header.Get("X-Source"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	collector := jamendo.NewMetricsCollector()
	chain := jamendo.NewInterceptorChain().WithMetrics(collector)
	chain.AddRequestInterceptor(jamendo.HeaderInterceptor(map[string]string{"X-Source": "interceptor"}))

	client := jamendohttp.NewClient(server.URL, jamendohttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/tracks", nil)
	require.NoError(t, err)

	metrics, ok := collector.GetMetrics("GET /tracks")
	require.True(t, ok)
	assert.Equal(t, int64(1), metrics.TotalRequests)
	assert.Equal(t, int64(0), metrics.TotalErrors)
}
