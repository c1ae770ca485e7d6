package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/fivetwenty-io/jamendo/internal/http"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
)

// maxBodyExcerpt bounds the body excerpt included in decode errors.
const maxBodyExcerpt = 256

// requester is shared by the resource clients. It owns normalization and
// response decoding; the transport does the rest.
type requester struct {
	httpClient *internalhttp.Client
	clientID   string
}

func newRequester(httpClient *internalhttp.Client, clientID string) *requester {
	return &requester{
		httpClient: httpClient,
		clientID:   clientID,
	}
}

// get normalizes params and issues a GET against path.
func (r *requester) get(ctx context.Context, path string, params jamendo.Params) (*jamendo.Result, error) {
	query, err := params.Normalize(r.clientID)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", path, err)
	}

	result, err := decodeResult(resp)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", path, err)
	}

	return result, nil
}

// postForm normalizes params and issues a form encoded POST against path.
func (r *requester) postForm(ctx context.Context, path string, params jamendo.Params) (*jamendo.WriteResult, error) {
	form, err := params.Normalize(r.clientID)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.PostForm(ctx, path, form)
	if err != nil {
		return nil, fmt.Errorf("posting %s: %w", path, err)
	}

	return decodeWriteResult(resp), nil
}

// decodeResult decodes a read response. The body is returned whatever the
// HTTP status; only a body that is not JSON at all is an error.
func decodeResult(resp *internalhttp.Response) (*jamendo.Result, error) {
	body := bytes.TrimSpace(resp.Body)
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: status %d: %s", jamendo.ErrInvalidResponseBody, resp.StatusCode, excerpt(body))
	}

	result := &jamendo.Result{
		StatusCode: resp.StatusCode,
		Body:       json.RawMessage(body),
	}

	if len(body) == 0 || body[0] != '{' {
		return result, nil
	}

	var envelope struct {
		Headers json.RawMessage `json:"headers"`
		Results json.RawMessage `json:"results"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", jamendo.ErrInvalidResponseBody, err)
	}

	result.Results = envelope.Results

	// A malformed headers block leaves the body intact for the caller.
	if len(envelope.Headers) > 0 && string(envelope.Headers) != "null" {
		err = json.Unmarshal(envelope.Headers, &result.Headers)
		if err != nil {
			result.HeadersError = fmt.Errorf("%w: %w", jamendo.ErrInvalidResponseBody, err)
		}
	}

	return result, nil
}

// decodeWriteResult extracts the code, error message and warnings of a write
// response from the JSON headers block, falling back to the HTTP headers.
func decodeWriteResult(resp *internalhttp.Response) *jamendo.WriteResult {
	result := &jamendo.WriteResult{StatusCode: resp.StatusCode}

	var envelope struct {
		Headers *jamendo.Headers `json:"headers"`
	}

	if json.Unmarshal(resp.Body, &envelope) == nil && envelope.Headers != nil {
		result.Code = envelope.Headers.Code
		result.ErrorMessage = envelope.Headers.ErrorMessage
		result.Warnings = envelope.Headers.Warnings

		return result
	}

	if raw := resp.Headers.Get("code"); raw != "" {
		code, err := strconv.Atoi(raw)
		if err == nil {
			result.Code = code
			result.ErrorMessage = resp.Headers.Get("error_message")
			result.Warnings = resp.Headers.Get("warnings")

			return result
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		result.Code = resp.StatusCode
		result.ErrorMessage = http.StatusText(resp.StatusCode)
	}

	return result
}

func excerpt(body []byte) string {
	if len(body) > maxBodyExcerpt {
		return string(body[:maxBodyExcerpt]) + "..."
	}

	return string(body)
}
