//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	ClientID     string
	ClientSecret string
	Protocol     string
	BinaryPath   string
	Verbose      bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		ClientID:     os.Getenv("JAMENDO_CLIENT_ID"),
		ClientSecret: os.Getenv("JAMENDO_CLIENT_SECRET"),
		Protocol:     os.Getenv("JAMENDO_PROTOCOL"),
		BinaryPath:   getBinaryPath(),
		Verbose:      os.Getenv("JAMENDO_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the jamendo binary.
func getBinaryPath() string {
	if path := os.Getenv("JAMENDO_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../jamendo",
		"./jamendo",
		"../jamendo",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "jamendo" // Fallback to PATH
}

// SkipIfMissingClientID skips the test when no application is configured.
func (config *TestConfig) SkipIfMissingClientID(t *testing.T) {
	t.Helper()

	if config.ClientID == "" {
		t.Skip("JAMENDO_CLIENT_ID not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the CLI has not been built.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	config.SkipIfMissingClientID(t)

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("jamendo binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner provides utilities for running jamendo commands.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a jamendo command with a throwaway config file and returns
// its output. Credentials are passed through the environment.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	configFile := runner.t.TempDir() + "/config.yml"
	args = append([]string{"--config", configFile}, args...)

	cmd := exec.Command(runner.config.BinaryPath, args...) //nolint:gosec // test binary path
	cmd.Env = append(os.Environ(), "JAMENDO_CLIENT_ID="+runner.config.ClientID)

	if runner.config.Protocol != "" {
		cmd.Env = append(cmd.Env, "JAMENDO_PROTOCOL="+runner.config.Protocol)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput checks that output is valid JSON.
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	var decoded interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &decoded), "output should be valid JSON")
}

// AssertYAMLOutput checks that output is valid YAML.
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var decoded interface{}
	require.NoError(t, yaml.Unmarshal([]byte(output), &decoded), "output should be valid YAML")
}
