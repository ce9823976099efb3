package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arunsworld/nursery"
	"github.com/schollz/progressbar/v3"
	"github.com/streambinder/spotilink/chart"
	"github.com/streambinder/spotilink/config"
	"github.com/streambinder/spotilink/entity"
	"github.com/streambinder/spotilink/library"
	"github.com/streambinder/spotilink/matcher"
	"github.com/streambinder/spotilink/playlist"
	"github.com/streambinder/spotilink/report"
	"github.com/streambinder/spotilink/util"
	"github.com/streambinder/spotilink/util/anchor"
)

// Catalog gathers every upstream operation a run relies upon
type Catalog interface {
	matcher.Catalog
	playlist.Catalog
}

type Result struct {
	Songs    []*entity.Song
	Matches  []*entity.Song
	Summary  report.Summary
	Playlist string
	Charts   []chart.Chart
	M3U      string
}

type runner struct {
	reader library.TagReader
	tui    *anchor.Window
	bars   bool
}

type Option func(*runner)

// WithReader overrides the tag reader used while scanning
func WithReader(reader library.TagReader) Option {
	return func(runner *runner) {
		runner.reader = reader
	}
}

func WithWindow(tui *anchor.Window) Option {
	return func(runner *runner) {
		runner.tui = tui
	}
}

// WithProgressBars enables progress bars on the matching and publishing loops
func WithProgressBars() Option {
	return func(runner *runner) {
		runner.bars = true
	}
}

// Run reconciles the configured library against the catalog: songs are scanned
// and matched sequentially, then the playlist gets published while charts are
// rendered. Charts are rendered even if publishing fails, in which case the
// partial result comes along with the error.
func Run(ctx context.Context, cfg *config.Config, catalog Catalog, options ...Option) (*Result, error) {
	runner := &runner{
		reader: library.DefaultReader,
		tui:    anchor.New(anchor.Red),
	}
	for _, option := range options {
		option(runner)
	}

	var (
		result = new(Result)
		err    error
	)
	runner.tui.Lot("scan").Printf("%s", cfg.Library)
	if result.Songs, err = library.Scan(cfg.Library,
		library.WithExtensions(cfg.Extensions...),
		library.WithReader(runner.reader),
		library.WithWindow(runner.tui)); err != nil {
		return nil, err
	}
	runner.tui.Lot("scan").Close(fmt.Sprintf("%d files", len(result.Songs)))

	if result.Matches, err = matcher.New(catalog,
		matcher.WithWindow(runner.tui),
		matcher.WithProgress(runner.progress("getting spotify ids"))).Match(ctx, result.Songs); err != nil {
		return nil, err
	}

	result.Summary = report.Summarize(len(result.Songs), result.Matches)
	runner.tui.Printf("found %d songs with Spotify IDs", result.Summary.Matched)
	runner.tui.Printf("found %d songs without Spotify IDs", result.Summary.Unmatched)

	err = nursery.RunConcurrentlyWithContext(ctx,
		func(ctx context.Context, ch chan error) {
			id, err := playlist.Build(ctx, catalog, cfg.PlaylistName, result.Matches,
				playlist.WithWindow(runner.tui),
				playlist.WithProgress(runner.progress("adding songs to playlist")))
			result.Playlist = id
			if err != nil {
				ch <- err
			}
		},
		func(context.Context, chan error) {
			result.Charts = runner.charts(cfg.ChartsDir, result.Matches)
		},
	)
	if err != nil {
		return result, err
	}

	if len(cfg.M3UDir) > 0 {
		if result.M3U, err = playlist.SaveM3U(cfg.M3UDir, cfg.PlaylistName, result.Matches); err != nil {
			return result, err
		}
		runner.tui.Printf("local playlist saved to %s", result.M3U)
	}
	if len(cfg.Export) > 0 {
		if err := report.New(len(result.Songs), result.Matches, result.Playlist).Save(cfg.Export); err != nil {
			return result, err
		}
		runner.tui.Printf("report saved to %s", cfg.Export)
	}
	return result, nil
}

// charts renders the rankings: a chart which cannot be written
// is reported but does not affect the run
func (runner *runner) charts(dir string, songs []*entity.Song) []chart.Chart {
	charts := []chart.Chart{chart.TopArtists(songs), chart.TopGenres(songs)}
	for index, file := range []string{chart.ArtistsFile, chart.GenresFile} {
		path := filepath.Join(dir, file)
		runner.tui.Lot("chart").Printf("%s", path)
		if err := chart.Render(path, charts[index]); err != nil {
			runner.tui.AnchorPrintf("chart %s not rendered: %s", path, err)
		}
	}
	runner.tui.Lot("chart").Close(fmt.Sprintf("%d charts", len(charts)))
	return charts
}

func (runner *runner) progress(description string) func(done, total int) {
	if !runner.bars {
		return func(int, int) {}
	}
	var bar *progressbar.ProgressBar
	return func(done, total int) {
		if bar == nil {
			bar = progressbar.Default(int64(total), description)
		}
		util.ErrSuppress(bar.Set(done))
	}
}
