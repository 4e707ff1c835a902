// Package tags extracts embedded tag metadata from audio clip files.
// It consolidates metadata reading for the container formats found in
// clip archives (MP3 and the MP4 family).
package tags

import (
	"strconv"
)

// File extensions recognized for format flags and reader fallbacks.
const (
	ExtMP3 = ".mp3"
	ExtM4A = ".m4a"
	ExtM4R = ".m4r"
	ExtMP4 = ".mp4"
)

// Metadata is the tag record kept for a clip. All fields are best
// effort: strings may be empty and Year is 0 when the file carries no
// usable year.
type Metadata struct {
	Artist string
	Album  string
	Title  string
	Year   int
}

// taglibTags wraps a taglib result map with helper methods.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// yearOf parses the leading year out of a date string that may be
// YYYY, YYYY-MM or YYYY-MM-DD. Returns 0 when there is none.
func yearOf(date string) int {
	if len(date) > 4 {
		date = date[:4]
	}
	y, _ := strconv.Atoi(date)
	return y
}
