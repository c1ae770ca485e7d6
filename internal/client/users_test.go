package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersClient_Favorites(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		method readMethod
	}{
		{name: "artists", path: constants.PathUsersArtists, method: (*Client).UsersFavoritesArtists},
		{name: "albums", path: constants.PathUsersAlbums, method: (*Client).UsersFavoritesAlbums},
		{name: "tracks", path: constants.PathUsersTracks, method: (*Client).UsersFavoritesTracks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newRecordingServer(t, http.StatusOK, okBody)
			client := NewTestClient(server.URL)

			params := jamendo.Params{"access_token": "t"}

			_, err := tt.method(client, context.Background(), params)
			require.NoError(t, err)

			request := server.last(t)
			assert.Equal(t, tt.path, request.Path)
			assert.Equal(t, "fan", request.Query.Get("relation"))
			assert.Equal(t, "t", request.Query.Get("access_token"))
			assert.Equal(t, "10", request.Query.Get("limit"))

			_, present := params["relation"]
			assert.False(t, present, "caller params must not be modified")
		})
	}
}

func TestUsersClient_FavoritesOverridesRelation(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, http.StatusOK, okBody)
	client := NewTestClient(server.URL)

	_, err := client.UsersFavoritesTracks(context.Background(), jamendo.Params{"relation": "like"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fan"}, server.last(t).Query["relation"])
}

func TestUsersClient_PlainRelationPassesThrough(t *testing.T) {
	t.Parallel()

	server := newRecordingServer(t, http.StatusOK, okBody)
	client := NewTestClient(server.URL)

	_, err := client.UsersTracks(context.Background(), jamendo.Params{"relation": []string{"like", "favorite"}})
	require.NoError(t, err)
	assert.Equal(t, "like favorite", server.last(t).Query.Get("relation"))
}
