package playlist

import (
	"context"
	"fmt"

	"github.com/streambinder/spotilink/entity"
	"github.com/streambinder/spotilink/util/anchor"
)

// BatchSize is the maximum amount of tracks the catalog
// accepts to be added to a playlist within a single call
const BatchSize = 20

// Catalog is the subset of the upstream catalog operations needed to publish a playlist
type Catalog interface {
	CurrentUser(ctx context.Context) (string, error)
	CreatePlaylist(ctx context.Context, userID, name string, public bool) (string, error)
	AddTracks(ctx context.Context, userID, playlistID string, trackIDs ...string) error
}

type builder struct {
	progress func(done, total int)
	tui      *anchor.Window
}

type Option func(*builder)

// WithProgress registers an observer notified after every submitted batch
func WithProgress(progress func(done, total int)) Option {
	return func(builder *builder) {
		builder.progress = progress
	}
}

func WithWindow(tui *anchor.Window) Option {
	return func(builder *builder) {
		builder.tui = tui
	}
}

// Build creates a new private playlist for the authenticated user and fills it,
// in order, with the catalog IDs of the matched songs. A failing batch stops the
// process, leaving the playlist with whatever got added until then.
func Build(ctx context.Context, catalog Catalog, name string, songs []*entity.Song, options ...Option) (string, error) {
	builder := &builder{
		progress: func(int, int) {},
		tui:      anchor.New(anchor.Red),
	}
	for _, option := range options {
		option(builder)
	}

	user, err := catalog.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("current user: %w", err)
	}

	builder.tui.Lot("playlist").Printf("creating %s", name)
	id, err := catalog.CreatePlaylist(ctx, user, name, false)
	if err != nil {
		return "", fmt.Errorf("create playlist %s: %w", name, err)
	}

	var (
		ids     = IDs(songs)
		batches = Batches(ids, BatchSize)
	)
	for index, batch := range batches {
		builder.tui.Lot("playlist").Printf("adding batch %d/%d", index+1, len(batches))
		if err := catalog.AddTracks(ctx, user, id, batch...); err != nil {
			return id, fmt.Errorf("add tracks to playlist %s: %w", id, err)
		}
		builder.progress(index+1, len(batches))
	}
	builder.tui.Lot("playlist").Close(fmt.Sprintf("%s (%d tracks)", name, len(ids)))
	return id, nil
}

// IDs collects the catalog IDs of the matched songs, preserving their order
func IDs(songs []*entity.Song) (ids []string) {
	for _, song := range songs {
		if song.Matched() {
			ids = append(ids, song.ID)
		}
	}
	return
}

// Batches splits ids into consecutive chunks of at most size elements
func Batches(ids []string, size int) (batches [][]string) {
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}
	return
}
