// Package jamendo provides types, interfaces, and helpers for working with the
// Jamendo API v3.0.
//
// # Overview
//
// The jamendo package defines the parameter type and its normalization rules,
// the response types (Result, WriteResult, Token), the error taxonomy and the
// client interfaces. A concrete implementation is provided by the
// jamendoclient package, which validates configuration and wires the
// transport. Most consumers import jamendoclient to construct a client and
// then call the endpoint methods declared here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/jamendo/pkg/jamendo"
//	  "github.com/fivetwenty-io/jamendo/pkg/jamendoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := jamendoclient.New(&jamendo.Config{ClientID: "your-client-id", Retry: true})
//	  if err != nil { log.Fatal(err) }
//
//	  res, err := cli.Tracks(ctx, jamendo.Params{"tags": []string{"rock", "pop"}})
//	  if err != nil { log.Fatal(err) }
//
//	  tracks, err := jamendo.DecodeResults[jamendo.Track](res)
//	  if err != nil { log.Fatal(err) }
//	  _ = tracks
//	}
//
// # Parameters
//
// Params is a plain map. Before every request missing limit, offset, format
// and client_id keys are filled with 10, 0, "json" and the configured client
// id. Slices become space-separated strings and a two-element datebetween
// (time.Time values, millisecond timestamps or date strings) becomes
// "YYYY-MM-DD_YYYY-MM-DD". The caller's map is never modified.
//
// # Errors
//
// ConfigurationError, ParameterError and TransportError are returned as Go
// errors. Read calls return the decoded body even when the API reports a
// failure; use Result.Err to turn the headers block into an *APIError. Write
// calls return a WriteResult carrying the code, error message and warnings.
//
// # Retries
//
// With Config.Retry set, a call that received no response at all is attempted
// exactly once more. Any response, whatever its status, is final.
package jamendo
