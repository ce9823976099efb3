package spotify

import (
	"context"
	"net/http"

	"github.com/streambinder/spotilink/entity"
	"github.com/zmb3/spotify/v2"
)

// Client exposes the catalog operations reconciliation relies upon
type Client struct {
	Client *spotify.Client
}

func New(httpClient *http.Client, options ...spotify.ClientOption) *Client {
	return &Client{spotify.New(httpClient, options...)}
}

// Search looks tracks up with a free-text query, returning at most limit candidates
func (client *Client) Search(ctx context.Context, query string, limit int) ([]entity.Track, error) {
	result, err := client.Client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, err
	}
	if result.Tracks == nil {
		return nil, nil
	}

	tracks := make([]entity.Track, 0, len(result.Tracks.Tracks))
	for _, track := range result.Tracks.Tracks {
		tracks = append(tracks, trackEntity(track))
	}
	return tracks, nil
}

func (client *Client) ArtistGenres(ctx context.Context, artistID string) ([]string, error) {
	artist, err := client.Client.GetArtist(ctx, spotify.ID(artistID))
	if err != nil {
		return nil, err
	}
	return artist.Genres, nil
}

func (client *Client) CurrentUser(ctx context.Context) (string, error) {
	user, err := client.Client.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (client *Client) CreatePlaylist(ctx context.Context, userID, name string, public bool) (string, error) {
	playlist, err := client.Client.CreatePlaylistForUser(ctx, userID, name, "", public, false)
	if err != nil {
		return "", err
	}
	return string(playlist.ID), nil
}

// AddTracks appends the given tracks to the playlist: the API scopes
// playlists by their ID only, so the user is there for symmetry
func (client *Client) AddTracks(ctx context.Context, _, playlistID string, trackIDs ...string) error {
	ids := make([]spotify.ID, 0, len(trackIDs))
	for _, id := range trackIDs {
		ids = append(ids, spotify.ID(id))
	}
	_, err := client.Client.AddTracksToPlaylist(ctx, spotify.ID(playlistID), ids...)
	return err
}

func trackEntity(track spotify.FullTrack) entity.Track {
	artists := make([]entity.Artist, 0, len(track.Artists))
	for _, artist := range track.Artists {
		artists = append(artists, entity.Artist{ID: string(artist.ID), Name: artist.Name})
	}
	return entity.Track{
		ID:      string(track.ID),
		Title:   track.Name,
		Album:   track.Album.Name,
		Artists: artists,
	}
}
