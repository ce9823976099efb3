package chart

import (
	"fmt"
	"testing"

	"github.com/streambinder/spotilink/entity"
	"github.com/stretchr/testify/assert"
)

func repeat(value string, times int) (values []string) {
	for i := 0; i < times; i++ {
		values = append(values, value)
	}
	return
}

func TestRank(t *testing.T) {
	var values []string
	values = append(values, "D")
	values = append(values, repeat("B", 3)...)
	values = append(values, repeat("A", 5)...)
	values = append(values, repeat("C", 3)...)

	assert.Equal(t, []Entry{{"A", 5}, {"B", 3}, {"C", 3}, {"D", 1}}, Rank(values, Top))
}

func TestRankTiesKeepFirstSeenOrder(t *testing.T) {
	assert.Equal(t, []Entry{{"zeta", 2}, {"alpha", 2}, {"mid", 1}},
		Rank([]string{"zeta", "mid", "alpha", "zeta", "alpha"}, Top))
}

func TestRankTop(t *testing.T) {
	var values []string
	for i := 0; i < 15; i++ {
		values = append(values, repeat(fmt.Sprintf("artist%02d", i), 15-i)...)
	}
	entries := Rank(values, Top)
	assert.Len(t, entries, 10)
	assert.Equal(t, Entry{"artist00", 15}, entries[0])
	assert.Equal(t, Entry{"artist09", 6}, entries[9])
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil, Top))
}

func TestTopArtists(t *testing.T) {
	chart := TopArtists([]*entity.Song{
		{ID: "1", CatalogArtist: "Band"},
		{ID: "2", CatalogArtist: "Other"},
		{ID: "3", CatalogArtist: "Band"},
		{ID: "4"},
	})
	assert.Equal(t, "Top Artists", chart.Title)
	assert.Equal(t, "Artist", chart.YLabel)
	assert.Equal(t, []Entry{{"Band", 2}, {"Other", 1}}, chart.Entries)
}

func TestTopGenres(t *testing.T) {
	chart := TopGenres([]*entity.Song{
		{ID: "1", CatalogArtist: "Band", Genres: []string{"rock", "indie"}},
		{ID: "2", CatalogArtist: "Band", Genres: []string{"rock", "indie"}},
		{ID: "3", CatalogArtist: "Other", Genres: []string{"pop", "rock"}},
		{ID: "4", CatalogArtist: "Quiet"},
	})
	assert.Equal(t, "Top Genres", chart.Title)
	assert.Equal(t, "Genre", chart.YLabel)
	assert.Equal(t, []Entry{{"rock", 3}, {"indie", 2}, {"pop", 1}}, chart.Entries)
}
