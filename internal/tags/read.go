package tags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Read reads tag metadata from an audio file. It returns an error when
// the file cannot be opened or no parser understands its tags; callers
// treat any error as "no metadata" for that file.
func Read(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch ext {
		case ExtMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3WithID3v2Fallback(path)
		case ExtM4A, ExtM4R, ExtMP4:
			// dhowden/tag can't parse some MP4-family files (e.g., ffmpeg-created)
			return readWithTaglib(path)
		}
		return nil, err
	}

	md := &Metadata{
		Artist: m.Artist(),
		Album:  m.Album(),
		Title:  m.Title(),
		Year:   m.Year(),
	}

	// dhowden/tag misses the year on some ID3v2.4 files that store it
	// in TDRC; re-check the frames directly.
	if md.Year == 0 && ext == ExtMP3 {
		md.Year = readMP3Year(path)
	}

	return md, nil
}
