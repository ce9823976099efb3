package util

import (
	"path/filepath"
	"strings"
)

// ErrWrap returns a function which unwraps a (value, error) pair,
// falling back to the given default whenever the error is set:
// > util.ErrWrap("m3u")(cmd.Flags().GetString("encoding"))
func ErrWrap[T any](fallback T) func(T, error) T {
	return func(value T, err error) T {
		if err != nil {
			return fallback
		}
		return value
	}
}

// ErrSuppress explicitly drops an error nobody cares about
func ErrSuppress(_ error) {}

// FileExt returns the extension of the base name of path:
// leading dots belong to the stem, hence ".mp3" has none
func FileExt(path string) string {
	return filepath.Ext(strings.TrimLeft(filepath.Base(path), "."))
}

// FileBaseStem returns the base name of path without its extension
func FileBaseStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, FileExt(base))
}

// Excerpt shortens the given text to at most length runes,
// appending an ellipsis when something got cut
func Excerpt(text string, length ...int) string {
	limit := 25
	if len(length) > 0 {
		limit = length[0]
	}
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= limit {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
