package entity

import "strings"

// Tags are the embedded metadata fields read out of a local file
type Tags struct {
	Title  string
	Artist string
	Album  string
}

// Song is a local file going through reconciliation:
// empty string fields are considered absent
type Song struct {
	Path      string `json:"filepath"`
	Filename  string `json:"filename"`
	Extension string `json:"extension"`
	Title     string `json:"title,omitempty"`
	Artist    string `json:"artist,omitempty"`
	Album     string `json:"album,omitempty"`

	// set together, by the matcher only
	ID              string   `json:"spotify_id,omitempty"`
	CatalogArtist   string   `json:"spotify_artist,omitempty"`
	CatalogArtistID string   `json:"spotify_artist_id,omitempty"`
	Genres          []string `json:"spotify_artist_genres,omitempty"`
}

// QueryTitle falls back to the filename whenever the title tag is missing
func (song *Song) QueryTitle() string {
	if len(song.Title) > 0 {
		return song.Title
	}
	return song.Filename
}

// Searchable tells whether there's enough data to look the song up:
// at least one between (query) title and artist is needed
func (song *Song) Searchable() bool {
	return len(song.QueryTitle()) > 0 || len(song.Artist) > 0
}

// Query joins the available fields into a free-text search query
func (song *Song) Query() string {
	var terms []string
	for _, term := range []string{song.QueryTitle(), song.Artist, song.Album} {
		if len(term) > 0 {
			terms = append(terms, term)
		}
	}
	return strings.Join(terms, " ")
}

// Matched tells whether the song has been associated with a catalog track
func (song *Song) Matched() bool {
	return len(song.ID) > 0
}

// Match attaches the catalog track data to the song
func (song *Song) Match(track Track, genres []string) {
	song.ID = track.ID
	if artist, ok := track.Artist(); ok {
		song.CatalogArtist = artist.Name
		song.CatalogArtistID = artist.ID
	}
	song.Genres = genres
}
