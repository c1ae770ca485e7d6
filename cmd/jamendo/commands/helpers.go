package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/internal/logging"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
	"github.com/fivetwenty-io/jamendo/pkg/jamendoclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// JSON formatting.
	defaultJSONIndent = 2

	// Columns shown in the detail column of result tables, in priority order.
	detailKeys = "artist_name,album_name,user_name,dispname,releasedate,joindate"

	// Parameter flag usage shared by the endpoint commands.
	paramFlagUsage = "request parameter as key=value (repeat a key to send a list)"
)

// createClient builds a client from the merged flag, environment and file
// configuration. The returned cleanup releases the log file.
func createClient() (jamendo.Client, func(), error) {
	config := loadConfig()
	if config.ClientID == "" {
		return nil, func() {}, constants.ErrNoClientIDSetting
	}

	clientConfig := &jamendo.Config{
		ClientID:      config.ClientID,
		ClientSecret:  config.ClientSecret,
		Protocol:      config.Protocol,
		APIVersion:    config.APIVersion,
		BaseURL:       config.BaseURL,
		Retry:         config.Retry,
		SkipTLSVerify: config.SkipSSLValidation,
		UserAgent:     constants.DefaultUserAgent,
	}

	cleanup := func() {}

	verbose := viper.GetBool("verbose")
	if verbose || config.LogFile != "" {
		level := "info"
		if verbose {
			level = "debug"
		}

		logger, closer := logging.New(logging.Options{Level: level, File: config.LogFile})
		cleanup = func() { _ = closer.Close() }

		clientConfig.Logger = logging.NewAdapter(logger)
		clientConfig.Debug = verbose
	}

	client, err := jamendoclient.New(clientConfig)
	if err != nil {
		cleanup()

		return nil, func() {}, fmt.Errorf("failed to create client: %w", err)
	}

	return client, cleanup, nil
}

// parseParams turns repeated key=value flags into request params. A key given
// more than once becomes a list, which the client joins with spaces.
func parseParams(raw []string) (jamendo.Params, error) {
	params := jamendo.Params{}

	for _, pair := range raw {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)

		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidParamFormat, pair)
		}

		switch existing := params[key].(type) {
		case nil:
			params[key] = value
		case string:
			params[key] = []string{existing, value}
		case []string:
			params[key] = append(existing, value)
		}
	}

	return params, nil
}

// outputFormat returns the configured output format.
func outputFormat() string {
	format := viper.GetString("output")
	if format == "" {
		return constants.FormatTable
	}

	return format
}

// writeJSON writes v as indented JSON.
func writeJSON(out io.Writer, v interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

	return encoder.Encode(v)
}

// writeYAML writes v as YAML.
func writeYAML(out io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(out)
	defer func() { _ = encoder.Close() }()

	return encoder.Encode(v)
}

// outputResult renders a read result in the configured format.
func outputResult(cmd *cobra.Command, result *jamendo.Result) error {
	out := cmd.OutOrStdout()

	switch outputFormat() {
	case constants.FormatJSON:
		var body interface{}

		err := json.Unmarshal(result.Body, &body)
		if err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}

		return writeJSON(out, body)
	case constants.FormatYAML:
		var body interface{}

		err := yaml.Unmarshal(result.Body, &body)
		if err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}

		return writeYAML(out, body)
	case constants.FormatTable:
		return outputResultTable(out, result)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownOutputFormat, outputFormat())
	}
}

func outputResultTable(out io.Writer, result *jamendo.Result) error {
	if err := result.Err(); err != nil {
		return err
	}

	var items []map[string]interface{}

	if len(result.Results) > 0 {
		err := json.Unmarshal(result.Results, &items)
		if err != nil {
			// Some endpoints return a single object or a scalar.
			return writeJSON(out, json.RawMessage(result.Results))
		}
	}

	if len(items) == 0 {
		_, _ = fmt.Fprintln(out, "No results found")

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header("ID", "Name", "Details")

	for _, item := range items {
		_ = table.Append([]string{stringField(item, "id"), stringField(item, "name"), detailField(item)})
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, _ = fmt.Fprintf(out, "%d result(s)\n", result.Headers.ResultsCount)

	return nil
}

// outputWriteResult renders a write result; a nonzero code is an error.
func outputWriteResult(cmd *cobra.Command, result *jamendo.WriteResult) error {
	out := cmd.OutOrStdout()

	switch outputFormat() {
	case constants.FormatJSON:
		err := writeJSON(out, result)
		if err != nil {
			return err
		}
	case constants.FormatYAML:
		err := writeYAML(out, result)
		if err != nil {
			return err
		}
	default:
		table := tablewriter.NewWriter(out)
		table.Header("Property", "Value")
		_ = table.Append([]string{"Code", strconv.Itoa(result.Code)})
		_ = table.Append([]string{"Error Message", orNotAvailable(result.ErrorMessage)})
		_ = table.Append([]string{"Warnings", orNotAvailable(result.Warnings)})

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	if !result.OK() {
		return fmt.Errorf("%w: %w", constants.ErrWriteRejected, result.Err())
	}

	return nil
}

func stringField(item map[string]interface{}, key string) string {
	switch value := item[key].(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}

func detailField(item map[string]interface{}) string {
	for _, key := range strings.Split(detailKeys, ",") {
		if value := stringField(item, key); value != "" {
			return value
		}
	}

	keys := make([]string, 0, len(item))
	for key := range item {
		if key != "id" && key != "name" {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return strings.Join(keys, ", ")
}

func orNotAvailable(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
