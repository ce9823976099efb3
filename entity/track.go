package entity

// Artist is a catalog artist as referenced by a track
type Artist struct {
	ID   string
	Name string
}

// Track is a catalog search candidate
type Track struct {
	ID      string
	Title   string
	Album   string
	Artists []Artist
}

// Artist returns the primary artist of the track, i.e. the first
// one the catalog lists, and false when none is listed at all
func (track *Track) Artist() (Artist, bool) {
	if len(track.Artists) == 0 {
		return Artist{}, false
	}
	return track.Artists[0], true
}
