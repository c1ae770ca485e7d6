//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
	"github.com/fivetwenty-io/jamendo/pkg/jamendoclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// APIIntegrationTestSuite runs read-only calls against the live API.
type APIIntegrationTestSuite struct {
	suite.Suite

	config *TestConfig
	client jamendo.Client
}

// SetupSuite creates the client or skips the suite.
func (s *APIIntegrationTestSuite) SetupSuite() {
	s.config = LoadTestConfig()
	s.config.SkipIfMissingClientID(s.T())

	client, err := jamendoclient.New(&jamendo.Config{
		ClientID:     s.config.ClientID,
		ClientSecret: s.config.ClientSecret,
		Protocol:     s.config.Protocol,
		Retry:        true,
	})
	s.Require().NoError(err)

	s.client = client
}

func (s *APIIntegrationTestSuite) context() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	s.T().Cleanup(cancel)

	return ctx
}

func (s *APIIntegrationTestSuite) TestTracksSearch() {
	result, err := s.client.Tracks(s.context(), jamendo.Params{
		"tags":  []string{"rock", "pop"},
		"limit": 3,
	})
	s.Require().NoError(err)
	s.Require().NoError(result.Err())

	tracks, err := jamendo.DecodeResults[jamendo.Track](result)
	s.Require().NoError(err)
	s.LessOrEqual(len(tracks), 3)

	for _, track := range tracks {
		s.NotEmpty(track.ID)
	}
}

func (s *APIIntegrationTestSuite) TestAlbumsDateBetween() {
	from := time.Date(2012, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2012, time.December, 31, 0, 0, 0, 0, time.UTC)

	result, err := s.client.Albums(s.context(), jamendo.Params{
		"datebetween": []time.Time{from, to},
		"limit":       2,
	})
	s.Require().NoError(err)
	s.Require().NoError(result.Err())

	albums, err := jamendo.DecodeResults[jamendo.Album](result)
	s.Require().NoError(err)

	for _, album := range albums {
		s.True(album.ReleaseDate >= "2012-01-01" && album.ReleaseDate <= "2012-12-31", album.ReleaseDate)
	}
}

func (s *APIIntegrationTestSuite) TestAutocomplete() {
	result, err := s.client.Autocomplete(s.context(), jamendo.Params{"prefix": "ro", "entity": "tags"})
	s.Require().NoError(err)
	s.NoError(result.Err())
}

func (s *APIIntegrationTestSuite) TestInvalidClientIDIsReportedAsData() {
	client, err := jamendoclient.NewWithClientID("not-a-real-client-id")
	s.Require().NoError(err)

	result, err := client.Tracks(s.context(), jamendo.Params{})
	s.Require().NoError(err)

	var apiErr *jamendo.APIError
	s.Require().ErrorAs(result.Err(), &apiErr)
	s.NotZero(apiErr.Code)
}

func (s *APIIntegrationTestSuite) TestAuthorizeRedirect() {
	location, err := s.client.Authorize(s.context(), jamendo.Params{
		"redirect_uri": "http://localhost/callback",
		"state":        "integration",
	})
	s.Require().NoError(err)
	s.NotEmpty(location)
}

func (s *APIIntegrationTestSuite) TestGrantWithoutSecret() {
	client, err := jamendoclient.NewWithClientID(s.config.ClientID)
	s.Require().NoError(err)

	_, err = client.Grant(s.context(), jamendo.Params{"code": "unused"})

	var configErr *jamendo.ConfigurationError
	s.Require().ErrorAs(err, &configErr)
}

func TestAPIIntegrationSuite(t *testing.T) {
	suite.Run(t, new(APIIntegrationTestSuite))
}

func TestCLIWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingBinary(t)

	runner := NewCommandRunner(config, t)

	t.Run("version", func(t *testing.T) {
		stdout, _, err := runner.Run("version", "-o", "json")
		require.NoError(t, err)
		AssertJSONOutput(t, stdout)
	})

	t.Run("tracks json", func(t *testing.T) {
		stdout, stderr, err := runner.Run("tracks", "-p", "limit=2", "-o", "json")
		require.NoError(t, err, stderr)
		AssertJSONOutput(t, stdout)
		assert.Contains(t, stdout, "results")
	})

	t.Run("artists yaml", func(t *testing.T) {
		stdout, stderr, err := runner.Run("artists", "-p", "limit=2", "-o", "yaml")
		require.NoError(t, err, stderr)
		AssertYAMLOutput(t, stdout)
	})

	t.Run("setuser without token fails locally", func(t *testing.T) {
		_, stderr, err := runner.Run("setuser", "like", "1")
		require.Error(t, err)
		assert.Contains(t, stderr, "access_token")
	})
}
