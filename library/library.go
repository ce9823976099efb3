package library

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/streambinder/spotilink/entity"
	"github.com/streambinder/spotilink/util"
	"github.com/streambinder/spotilink/util/anchor"
)

// DefaultExtensions are matched as plain, case-sensitive suffixes
var DefaultExtensions = []string{"mp3"}

type scanner struct {
	extensions []string
	reader     TagReader
	tui        *anchor.Window
}

type Option func(*scanner)

func WithExtensions(extensions ...string) Option {
	return func(scanner *scanner) {
		if len(extensions) > 0 {
			scanner.extensions = extensions
		}
	}
}

func WithReader(reader TagReader) Option {
	return func(scanner *scanner) {
		scanner.reader = reader
	}
}

func WithWindow(tui *anchor.Window) Option {
	return func(scanner *scanner) {
		scanner.tui = tui
	}
}

// Scan walks root recursively and returns a song for every file
// with an accepted extension, in walk order: unreadable entries below
// root get reported and skipped, tag reading failures are reported
// and leave the song with path data only
func Scan(root string, options ...Option) ([]*entity.Song, error) {
	scanner := &scanner{
		extensions: DefaultExtensions,
		reader:     DefaultReader,
		tui:        anchor.New(anchor.Red),
	}
	for _, option := range options {
		option(scanner)
	}

	var songs []*entity.Song
	if err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			scanner.tui.AnchorPrintf("error walking %s: %s", path, err)
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() || !scanner.accepts(entry.Name()) {
			return nil
		}
		songs = append(songs, scanner.song(filepath.Dir(path), entry.Name()))
		return nil
	}); err != nil {
		return nil, err
	}
	return songs, nil
}

func (scanner *scanner) accepts(name string) bool {
	for _, extension := range scanner.extensions {
		if strings.HasSuffix(name, extension) {
			return true
		}
	}
	return false
}

func (scanner *scanner) song(dir, name string) *entity.Song {
	var (
		stripped = util.StripEmoji(name)
		song     = &entity.Song{
			Path:      filepath.Join(dir, stripped),
			Filename:  util.Clean(util.FileBaseStem(stripped)),
			Extension: util.FileExt(stripped),
		}
	)

	tags, err := scanner.reader.Read(song.Path)
	if err != nil {
		scanner.tui.AnchorPrintf("error loading file %s: %s", song.Path, err)
		return song
	}
	if tags == nil {
		return song
	}

	// whatever gets cleaned down to nothing stays absent
	song.Title = util.Clean(tags.Title)
	song.Artist = util.Clean(tags.Artist)
	song.Album = util.Clean(tags.Album)
	return song
}
