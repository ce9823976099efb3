package report

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/streambinder/spotilink/chart"
	"github.com/streambinder/spotilink/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Summary struct {
	Scanned   int `json:"scanned"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
}

// Summarize counts matched and unmatched songs among the given ones.
// Callers pass the matcher output, which only holds matched songs: the
// unmatched count hence only ever reflects songs without a catalog ID
// that made it through matching, never songs whose search failed.
func Summarize(scanned int, songs []*entity.Song) Summary {
	summary := Summary{Scanned: scanned}
	for _, song := range songs {
		if song.Matched() {
			summary.Matched++
		}
	}
	summary.Unmatched = len(songs) - summary.Matched
	return summary
}

type Report struct {
	Summary    Summary        `json:"summary"`
	Playlist   string         `json:"playlist,omitempty"`
	Songs      []*entity.Song `json:"songs"`
	TopArtists []chart.Entry  `json:"top_artists"`
	TopGenres  []chart.Entry  `json:"top_genres"`
}

// New gathers everything a run produced into a report
func New(scanned int, songs []*entity.Song, playlist string) *Report {
	return &Report{
		Summary:    Summarize(scanned, songs),
		Playlist:   playlist,
		Songs:      songs,
		TopArtists: chart.TopArtists(songs).Entries,
		TopGenres:  chart.TopGenres(songs).Entries,
	}
}

// Save writes the report as indented JSON to path
func (report *Report) Save(path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
