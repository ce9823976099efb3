// Package spotifytest provides an in-memory, deterministic catalog
// to exercise the reconciliation stages without hitting the network.
package spotifytest

import (
	"context"
	"fmt"
	"sync"

	"github.com/streambinder/spotilink/entity"
)

type Search struct {
	Query string
	Limit int
}

type Playlist struct {
	ID     string
	User   string
	Name   string
	Public bool
}

type Catalog struct {
	// Results maps queries to their candidates,
	// any other query yields no candidate at all
	Results map[string][]entity.Track
	Genres  map[string][]string
	User    string

	SearchErr error
	ArtistErr error
	CreateErr error
	AddErr    error
	// AddErrAt is the (zero-based) batch AddErr is returned for
	AddErrAt int

	lock          sync.Mutex
	Searches      []Search
	ArtistLookups []string
	Playlists     []Playlist
	Batches       [][]string
}

func New() *Catalog {
	return &Catalog{
		Results: make(map[string][]entity.Track),
		Genres:  make(map[string][]string),
		User:    "user",
	}
}

// Track registers a single candidate for the given query
func (catalog *Catalog) Track(query, id, artistID, artist string, genres ...string) *Catalog {
	catalog.Results[query] = append(catalog.Results[query], entity.Track{
		ID:      id,
		Artists: []entity.Artist{{ID: artistID, Name: artist}},
	})
	if len(genres) > 0 {
		catalog.Genres[artistID] = genres
	}
	return catalog
}

func (catalog *Catalog) Search(_ context.Context, query string, limit int) ([]entity.Track, error) {
	catalog.lock.Lock()
	defer catalog.lock.Unlock()
	catalog.Searches = append(catalog.Searches, Search{query, limit})
	if catalog.SearchErr != nil {
		return nil, catalog.SearchErr
	}
	results := catalog.Results[query]
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (catalog *Catalog) ArtistGenres(_ context.Context, artistID string) ([]string, error) {
	catalog.lock.Lock()
	defer catalog.lock.Unlock()
	catalog.ArtistLookups = append(catalog.ArtistLookups, artistID)
	if catalog.ArtistErr != nil {
		return nil, catalog.ArtistErr
	}
	return catalog.Genres[artistID], nil
}

func (catalog *Catalog) CurrentUser(_ context.Context) (string, error) {
	return catalog.User, nil
}

func (catalog *Catalog) CreatePlaylist(_ context.Context, userID, name string, public bool) (string, error) {
	catalog.lock.Lock()
	defer catalog.lock.Unlock()
	if catalog.CreateErr != nil {
		return "", catalog.CreateErr
	}
	id := fmt.Sprintf("playlist%d", len(catalog.Playlists)+1)
	catalog.Playlists = append(catalog.Playlists, Playlist{id, userID, name, public})
	return id, nil
}

func (catalog *Catalog) AddTracks(_ context.Context, _, playlistID string, trackIDs ...string) error {
	catalog.lock.Lock()
	defer catalog.lock.Unlock()
	if catalog.AddErr != nil && catalog.AddErrAt == len(catalog.Batches) {
		return catalog.AddErr
	}
	if !catalog.exists(playlistID) {
		return fmt.Errorf("playlist %s not found", playlistID)
	}
	catalog.Batches = append(catalog.Batches, append([]string(nil), trackIDs...))
	return nil
}

func (catalog *Catalog) exists(playlistID string) bool {
	for _, playlist := range catalog.Playlists {
		if playlist.ID == playlistID {
			return true
		}
	}
	return false
}
