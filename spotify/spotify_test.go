package spotify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/streambinder/spotilink/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmb3/spotify/v2"
)

func server(t *testing.T) (*Client, *[]string) {
	t.Helper()
	var added []string
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "track", r.URL.Query().Get("type"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		if r.URL.Query().Get("q") != "Song Band Rec" {
			w.Write([]byte(`{"tracks":{"items":[]}}`))
			return
		}
		w.Write([]byte(`{"tracks":{"items":[{
			"id":"t1","name":"Song","album":{"name":"Rec"},
			"artists":[{"id":"a1","name":"Band"},{"id":"a2","name":"Guest"}]
		}]}}`))
	})
	mux.HandleFunc("/artists/a1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"a1","name":"Band","genres":["rock","indie"]}`))
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"me","display_name":"Me"}`))
	})
	mux.HandleFunc("/users/me/playlists", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Local", body["name"])
		assert.Equal(t, false, body["public"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"p1","name":"Local"}`))
	})
	mux.HandleFunc("/playlists/p1/tracks", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			URIs []string `json:"uris"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		added = append(added, body.URIs...)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"snapshot_id":"s1"}`))
	})
	mux.HandleFunc("/artists/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"status":404,"message":"non existing id"}}`))
	})

	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)
	return New(upstream.Client(), spotify.WithBaseURL(upstream.URL+"/")), &added
}

func TestSearch(t *testing.T) {
	client, _ := server(t)
	tracks, err := client.Search(context.Background(), "Song Band Rec", 1)
	require.NoError(t, err)
	assert.Equal(t, []entity.Track{{
		ID:      "t1",
		Title:   "Song",
		Album:   "Rec",
		Artists: []entity.Artist{{ID: "a1", Name: "Band"}, {ID: "a2", Name: "Guest"}},
	}}, tracks)

	tracks, err = client.Search(context.Background(), "nothing", 1)
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestArtistGenres(t *testing.T) {
	client, _ := server(t)
	genres, err := client.ArtistGenres(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"rock", "indie"}, genres)

	_, err = client.ArtistGenres(context.Background(), "broken")
	assert.Error(t, err)
}

func TestPlaylist(t *testing.T) {
	client, added := server(t)
	user, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "me", user)

	id, err := client.CreatePlaylist(context.Background(), user, "Local", false)
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	require.NoError(t, client.AddTracks(context.Background(), user, id, "t1", "t2"))
	assert.Equal(t, []string{"spotify:track:t1", "spotify:track:t2"}, *added)
}
