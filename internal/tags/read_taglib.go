package tags

import (
	"go.senan.xyz/taglib"
)

// readWithTaglib reads metadata using TagLib as fallback when
// dhowden/tag fails on an MP4-family file.
func readWithTaglib(path string) (*Metadata, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(rawTags)

	return &Metadata{
		Artist: tags.get(taglib.Artist),
		Album:  tags.get(taglib.Album),
		Title:  tags.get(taglib.Title),
		Year:   yearOf(tags.get(taglib.Date)),
	}, nil
}
