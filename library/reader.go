package library

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/streambinder/spotilink/entity"
	"github.com/streambinder/spotilink/entity/id3"
)

// TagReader loads the embedded metadata of a local file:
// a nil result means no tag container has been found
type TagReader interface {
	Read(path string) (*entity.Tags, error)
}

// ReaderFunc adapts a plain function to the TagReader interface
type ReaderFunc func(path string) (*entity.Tags, error)

func (fn ReaderFunc) Read(path string) (*entity.Tags, error) {
	return fn(path)
}

// DefaultReader parses ID3v2 for MP3 files and falls back to format
// sniffing for everything else, as well as for MP3s with no ID3v2 tag
// (e.g. ID3v1 only)
var DefaultReader TagReader = ReaderFunc(func(path string) (*entity.Tags, error) {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if tags, err := id3.Read(path); err != nil || tags != nil {
			return tags, err
		}
	}
	return sniff(path)
})

func sniff(path string) (*entity.Tags, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	metadata, err := tag.ReadFrom(file)
	if errors.Is(err, tag.ErrNoTagsFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &entity.Tags{
		Title:  metadata.Title(),
		Artist: metadata.Artist(),
		Album:  metadata.Album(),
	}, nil
}
