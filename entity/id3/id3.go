package id3

import (
	"github.com/bogem/id3v2/v2"
	"github.com/streambinder/spotilink/entity"
)

// Frames holds the IDs of the frames worth parsing when reading:
// title, lead artist and album, alike in ID3v2.3 and ID3v2.4
var Frames = []string{"TIT2", "TPE1", "TALB"}

type Tag struct {
	*id3v2.Tag
}

func Open(path string, options id3v2.Options) (*Tag, error) {
	tag, err := id3v2.Open(path, options)
	if err != nil {
		return nil, err
	}
	return &Tag{tag}, nil
}

// Read opens the file at path, parsing the title, artist and album frames only:
// a nil result with no error means the file carries no ID3v2 tag at all
func Read(path string) (*entity.Tags, error) {
	tag, err := Open(path, id3v2.Options{Parse: true, ParseFrames: Frames})
	if err != nil {
		return nil, err
	}
	defer tag.Close()
	return tag.Tags(), nil
}

// Tags returns the raw text frames, nil if no frame got parsed
func (tag *Tag) Tags() *entity.Tags {
	if !tag.HasFrames() {
		return nil
	}
	return &entity.Tags{
		Title:  tag.Title(),
		Artist: tag.Artist(),
		Album:  tag.Album(),
	}
}

// Write sets the given text frames and saves them into the file
func (tag *Tag) Write(tags entity.Tags) error {
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	if len(tags.Title) > 0 {
		tag.SetTitle(tags.Title)
	}
	if len(tags.Artist) > 0 {
		tag.SetArtist(tags.Artist)
	}
	if len(tags.Album) > 0 {
		tag.SetAlbum(tags.Album)
	}
	return tag.Save()
}
