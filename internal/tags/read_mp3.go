package tags

import (
	"errors"

	"github.com/bogem/id3v2/v2"
)

// readMP3WithID3v2Fallback reads MP3 metadata using only the id3v2 library.
// This is used as a fallback when dhowden/tag fails (e.g., on some UTF-16 encoded tags).
func readMP3WithID3v2Fallback(path string) (*Metadata, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	if id3tag.Count() == 0 {
		return nil, errors.New("no ID3 frames")
	}

	md := &Metadata{
		Artist: id3tag.Artist(),
		Album:  id3tag.Album(),
		Title:  id3tag.Title(),
		Year:   yearOf(id3tag.Year()),
	}
	if md.Year == 0 {
		md.Year = yearFromFrames(id3tag)
	}
	return md, nil
}

// readMP3Year reads the year directly from ID3v2 frames.
func readMP3Year(path string) int {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return 0
	}
	defer id3tag.Close()
	return yearFromFrames(id3tag)
}

// yearFromFrames checks the ID3v2.4 recording date frame first, then
// the ID3v2.3 year frame.
func yearFromFrames(id3tag *id3v2.Tag) int {
	if y := yearOf(getID3TextFrame(id3tag, "TDRC")); y != 0 {
		return y
	}
	return yearOf(getID3TextFrame(id3tag, "TYER"))
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
