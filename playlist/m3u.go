package playlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"github.com/streambinder/spotilink/entity"
)

// M3UPath returns the path of the local playlist file for the given name
func M3UPath(dir, name string) string {
	return filepath.Join(dir, slug.Make(name)+".m3u")
}

// WriteM3U encodes the matched songs as an extended M3U playlist
func WriteM3U(w io.Writer, songs []*entity.Song) error {
	writer := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(writer, "#EXTM3U"); err != nil {
		return err
	}
	for _, song := range songs {
		if !song.Matched() {
			continue
		}
		if _, err := fmt.Fprintf(writer, "#EXTINF:-1,%s - %s\n%s\n",
			song.CatalogArtist, song.QueryTitle(), song.Path); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// SaveM3U writes the local playlist file and returns its path
func SaveM3U(dir, name string, songs []*entity.Song) (string, error) {
	path := M3UPath(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	if err := WriteM3U(file, songs); err != nil {
		return "", err
	}
	return path, file.Close()
}
