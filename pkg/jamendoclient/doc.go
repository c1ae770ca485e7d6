// Package jamendoclient provides the primary entry point for constructing a
// Jamendo API v3.0 client that implements the jamendo.Client interface.
//
// It validates the configuration, applies the protocol and API version
// defaults, and wires the HTTP transport on top of the interfaces and types
// defined in the jamendo package.
//
// Quick start
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
//
//	  // Minimal: read endpoints only need a client id.
//	  cli, err := jamendoclient.NewWithClientID("your-client-id")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with every option spelled out.
//	  cli, err = jamendoclient.New(&jamendo.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret", // only for Grant and Refresh
//	    Protocol:     "https",
//	    Retry:        true,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  res, err := cli.UsersFavoritesTracks(ctx, jamendo.Params{"access_token": "token"})
//	  if err != nil { log.Fatal(err) }
//	  _ = res
//	}
//
// # TLS
//
// Config.SkipTLSVerify disables certificate verification. It exists for
// proxies with self-signed certificates and should stay off otherwise.
//
// # Helpers
//
// NewWithClientID and NewWithCredentials cover the two common setups.
package jamendoclient
