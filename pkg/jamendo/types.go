package jamendo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Headers is the status block the API embeds in every JSON response.
type Headers struct {
	Status       string `json:"status"        yaml:"status"`
	Code         int    `json:"code"          yaml:"code"`
	ErrorMessage string `json:"error_message" yaml:"error_message"`
	Warnings     string `json:"warnings"      yaml:"warnings"`
	ResultsCount int    `json:"results_count" yaml:"results_count"`
	Next         string `json:"next,omitempty" yaml:"next,omitempty"`
}

// UnmarshalJSON accepts numbers or numeric strings for the integer fields and
// any JSON value for warnings, which the API is not consistent about.
func (h *Headers) UnmarshalJSON(data []byte) error {
	var raw struct {
		Status       string          `json:"status"`
		Code         json.RawMessage `json:"code"`
		ErrorMessage string          `json:"error_message"`
		Warnings     json.RawMessage `json:"warnings"`
		ResultsCount json.RawMessage `json:"results_count"`
		Next         string          `json:"next"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("parsing response headers: %w", err)
	}

	h.Status = raw.Status
	h.ErrorMessage = raw.ErrorMessage
	h.Warnings = looseString(raw.Warnings)
	h.Next = raw.Next

	// Fields that parse are kept even when another one does not.
	code, codeErr := looseInt(raw.Code)
	if codeErr == nil {
		h.Code = code
	}

	count, countErr := looseInt(raw.ResultsCount)
	if countErr == nil {
		h.ResultsCount = count
	}

	if codeErr != nil {
		return fmt.Errorf("parsing response headers code: %w", codeErr)
	}

	if countErr != nil {
		return fmt.Errorf("parsing response headers results_count: %w", countErr)
	}

	return nil
}

// OK reports whether the API signalled success.
func (h Headers) OK() bool {
	return h.Code == CodeSuccess
}

// Err returns an *APIError for a nonzero code, nil otherwise.
func (h Headers) Err() error {
	if h.OK() {
		return nil
	}

	return &APIError{Code: h.Code, Message: h.ErrorMessage, Warnings: h.Warnings}
}

// Result is the decoded body of a read request. The body is returned as the
// API sent it, whatever the HTTP status; inspecting Headers is up to the caller.
type Result struct {
	StatusCode int             `json:"-"       yaml:"-"`
	Headers    Headers         `json:"headers" yaml:"headers"`
	Results    json.RawMessage `json:"results" yaml:"-"`
	Body       json.RawMessage `json:"-"       yaml:"-"`
	// HeadersError is set when the headers block could not be fully parsed.
	// Headers then holds only the fields that did parse.
	HeadersError error `json:"-" yaml:"-"`
}

// Decode unmarshals the results array into v.
func (r *Result) Decode(v any) error {
	if len(r.Results) == 0 {
		return fmt.Errorf("%w: no results field", ErrInvalidResponseBody)
	}

	err := json.Unmarshal(r.Results, v)
	if err != nil {
		return fmt.Errorf("parsing results: %w", err)
	}

	return nil
}

// Err returns the API error reported in the headers block, if any, or the
// reason the headers block could not be parsed.
func (r *Result) Err() error {
	if r.HeadersError != nil {
		return r.HeadersError
	}

	return r.Headers.Err()
}

// DecodeResults decodes the results array of a read response into typed values.
func DecodeResults[T any](result *Result) ([]T, error) {
	var items []T

	err := result.Decode(&items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// WriteResult is the outcome of a write request: the API status code, its
// error message and any warnings. A nonzero code is reported here rather than
// as a Go error.
type WriteResult struct {
	StatusCode   int    `json:"-"             yaml:"-"`
	Code         int    `json:"code"          yaml:"code"`
	ErrorMessage string `json:"error_message" yaml:"error_message"`
	Warnings     string `json:"warnings"      yaml:"warnings"`
}

// OK reports whether the write succeeded.
func (w *WriteResult) OK() bool {
	return w.Code == CodeSuccess
}

// Err returns an *APIError for a nonzero code, nil otherwise.
func (w *WriteResult) Err() error {
	if w.OK() {
		return nil
	}

	return &APIError{Code: w.Code, Message: w.ErrorMessage, Warnings: w.Warnings}
}

// Token is the body returned by the OAuth grant endpoint.
type Token struct {
	AccessToken  string          `json:"access_token"  yaml:"access_token"`
	TokenType    string          `json:"token_type"    yaml:"token_type"`
	ExpiresIn    int             `json:"expires_in"    yaml:"expires_in"`
	RefreshToken string          `json:"refresh_token" yaml:"refresh_token"`
	Scope        string          `json:"scope"         yaml:"scope"`
	IssuedAt     time.Time       `json:"-"             yaml:"issued_at"`
	Raw          json.RawMessage `json:"-"             yaml:"-"`
}

// Expiry returns the absolute expiry time, or the zero time if unknown.
func (t *Token) Expiry() time.Time {
	if t.ExpiresIn <= 0 || t.IssuedAt.IsZero() {
		return time.Time{}
	}

	return t.IssuedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// OAuth2 converts the token for use with golang.org/x/oauth2.
func (t *Token) OAuth2() *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		Expiry:       t.Expiry(),
		ExpiresIn:    int64(t.ExpiresIn),
	}

	if len(t.Raw) > 0 {
		var extra map[string]interface{}
		if json.Unmarshal(t.Raw, &extra) == nil {
			token = token.WithExtra(extra)
		}
	}

	return token
}

func looseInt(raw json.RawMessage) (int, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return 0, nil
	}

	text = strings.Trim(text, `"`)
	if text == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: not an integer: %s", ErrInvalidResponseBody, text)
	}

	return value, nil
}

func looseString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var str string
	if json.Unmarshal(raw, &str) == nil {
		return str
	}

	return string(raw)
}
