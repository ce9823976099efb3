package matcher

import (
	"context"
	"fmt"

	"github.com/streambinder/spotilink/entity"
	"github.com/streambinder/spotilink/util"
	"github.com/streambinder/spotilink/util/anchor"
)

// Catalog is the subset of the upstream catalog operations needed for matching
type Catalog interface {
	Search(ctx context.Context, query string, limit int) ([]entity.Track, error)
	ArtistGenres(ctx context.Context, artistID string) ([]string, error)
}

// Matcher looks local songs up in the catalog, keeping track of
// the catalog IDs already handed out: it is not safe for concurrent use
type Matcher struct {
	catalog  Catalog
	seen     map[string]struct{}
	progress func(done, total int)
	tui      *anchor.Window
}

type Option func(*Matcher)

// WithProgress registers an observer notified after every processed song
func WithProgress(progress func(done, total int)) Option {
	return func(matcher *Matcher) {
		matcher.progress = progress
	}
}

func WithWindow(tui *anchor.Window) Option {
	return func(matcher *Matcher) {
		matcher.tui = tui
	}
}

func New(catalog Catalog, options ...Option) *Matcher {
	matcher := &Matcher{
		catalog:  catalog,
		seen:     make(map[string]struct{}),
		progress: func(int, int) {},
		tui:      anchor.New(anchor.Red),
	}
	for _, option := range options {
		option(matcher)
	}
	return matcher
}

// Match returns, in input order, the songs which got associated with a catalog
// track not handed out before: songs with neither title nor artist, songs with
// no search result and songs resolving to an already seen track are left out.
// Catalog failures stop the whole process.
func (matcher *Matcher) Match(ctx context.Context, songs []*entity.Song) ([]*entity.Song, error) {
	var matches []*entity.Song
	for index, song := range songs {
		match, err := matcher.match(ctx, song)
		if err != nil {
			return nil, err
		}
		if match {
			matches = append(matches, song)
		}
		matcher.progress(index+1, len(songs))
	}
	matcher.tui.Lot("match").Close(fmt.Sprintf("%d tracks", len(matches)))
	return matches, nil
}

// Seen tells whether the given catalog ID has already been matched
func (matcher *Matcher) Seen(id string) bool {
	_, ok := matcher.seen[id]
	return ok
}

func (matcher *Matcher) match(ctx context.Context, song *entity.Song) (bool, error) {
	if !song.Searchable() {
		return false, nil
	}

	query := song.Query()
	matcher.tui.Lot("match").Print(util.Excerpt(query, 50))
	tracks, err := matcher.catalog.Search(ctx, query, 1)
	if err != nil {
		return false, fmt.Errorf("search %q: %w", query, err)
	}
	if len(tracks) == 0 {
		return false, nil
	}

	track := tracks[0]
	if matcher.Seen(track.ID) {
		return false, nil
	}
	matcher.seen[track.ID] = struct{}{}

	var genres []string
	if artist, ok := track.Artist(); ok && len(artist.ID) > 0 {
		if genres, err = matcher.catalog.ArtistGenres(ctx, artist.ID); err != nil {
			return false, fmt.Errorf("artist %s: %w", artist.ID, err)
		}
	}
	song.Match(track, genres)
	return true, nil
}
