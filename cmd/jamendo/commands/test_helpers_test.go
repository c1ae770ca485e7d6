package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	testClientID     = "test-client"
	testClientSecret = "test-secret"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// findCommand finds a command by name in a list.
func findCommand(cmds []*cobra.Command, name string) *cobra.Command {
	for _, c := range cmds {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// setupViper resets the global configuration, points it at serverURL and
// returns the config file the commands will write to.
func setupViper(t *testing.T, serverURL string) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)
	viper.Set("client_id", testClientID)
	viper.Set("base_url", serverURL)
	viper.Set("output", constants.FormatJSON)

	return configFile
}

// runCommand executes cmd with args and returns its standard output.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

// capturedRequest is what the test server saw.
type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
}

// apiServer answers every request with body and records the last request.
type apiServer struct {
	*httptest.Server

	mu   sync.Mutex
	last capturedRequest
}

func newAPIServer(t *testing.T, body string) *apiServer {
	t.Helper()

	server := &apiServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		server.mu.Lock()
		server.last = capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Form:   r.PostForm,
		}
		server.mu.Unlock()

		w.Header().Set("Content-Type", constants.ContentTypeJSON)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return server
}

func (s *apiServer) request() capturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}
