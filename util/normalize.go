package util

import (
	"strings"
	"unicode"
)

// emoji holds the pictograph blocks filenames and tags get stripped of:
// it is a fixed set, other symbols (e.g. arrows, box drawing) are kept
var emoji = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26ff, Stride: 1}, // miscellaneous symbols
		{Lo: 0x2700, Hi: 0x27bf, Stride: 1}, // dingbats
	},
	R32: []unicode.Range32{
		{Lo: 0x1f300, Hi: 0x1f5ff, Stride: 1}, // miscellaneous symbols and pictographs
		{Lo: 0x1f600, Hi: 0x1f64f, Stride: 1}, // emoticons
		{Lo: 0x1f680, Hi: 0x1f6ff, Stride: 1}, // transport and map symbols
		{Lo: 0x1f900, Hi: 0x1f9ff, Stride: 1}, // supplemental symbols and pictographs
		{Lo: 0x1fa70, Hi: 0x1faff, Stride: 1}, // symbols and pictographs extended-a
	},
}

// StripEmoji drops every rune belonging to the emoji blocks
func StripEmoji(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(emoji, r) {
			return -1
		}
		return r
	}, text)
}

// Clean reduces text to word runes (letters, numbers, underscore)
// and whitespace, trimming both ends:
// > Clean("  (Don't) Stop!  ") == "Dont Stop"
func Clean(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Map(func(r rune) rune {
		if isWord(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
	return strings.TrimSpace(text)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
