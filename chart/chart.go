package chart

import (
	"sort"

	"github.com/streambinder/spotilink/entity"
)

const (
	// Top is the amount of entries charts are limited to
	Top = 10

	ArtistsFile = "top_artists.png"
	GenresFile  = "top_genres.png"
)

type Entry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Chart is a ranked frequency table ready to be rendered
type Chart struct {
	Title   string
	XLabel  string
	YLabel  string
	Entries []Entry
}

// Rank counts the occurrences of each value and returns the n most frequent
// ones, in descending order: ties keep the order values were first seen in
func Rank(values []string, n int) []Entry {
	var (
		entries []Entry
		index   = make(map[string]int)
	)
	for _, value := range values {
		if position, ok := index[value]; ok {
			entries[position].Count++
			continue
		}
		index[value] = len(entries)
		entries = append(entries, Entry{value, 1})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// TopArtists ranks the catalog primary artists of the matched songs
func TopArtists(songs []*entity.Song) Chart {
	var artists []string
	for _, song := range songs {
		if len(song.CatalogArtist) > 0 {
			artists = append(artists, song.CatalogArtist)
		}
	}
	return Chart{
		Title:   "Top Artists",
		XLabel:  "Number of Songs",
		YLabel:  "Artist",
		Entries: Rank(artists, Top),
	}
}

// TopGenres ranks genres across all the matched songs: a genre
// counts once for every song whose artist is tagged with it
func TopGenres(songs []*entity.Song) Chart {
	var genres []string
	for _, song := range songs {
		genres = append(genres, song.Genres...)
	}
	return Chart{
		Title:   "Top Genres",
		XLabel:  "Number of Songs",
		YLabel:  "Genre",
		Entries: Rank(genres, Top),
	}
}
