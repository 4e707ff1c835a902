// Package catalog groups audio clip files into logical clips. Files
// that share a directory and base filename are variants of the same
// clip in different container formats.
package catalog

import (
	"clipscan/internal/tags"
)

// Clip is one logical audio clip aggregated from its format variants.
type Clip struct {
	Key    string // relative directory joined with the base filename
	Parent string // directory path relative to the scan root
	Stem   string // filename without extension

	// Formats holds the extensions observed for this clip, in
	// discovery order, without duplicates.
	Formats []string

	// Tags holds metadata from the first variant that parsed
	// successfully, or nil when no variant did.
	Tags *tags.Metadata
}

// HasFormat reports whether a variant with the given extension was observed.
func (c *Clip) HasFormat(ext string) bool {
	for _, f := range c.Formats {
		if f == ext {
			return true
		}
	}
	return false
}

// addFormat appends ext to Formats unless it is already present.
func (c *Clip) addFormat(ext string) {
	if !c.HasFormat(ext) {
		c.Formats = append(c.Formats, ext)
	}
}

// Catalog is the result of a scan: clips indexed by key, preserving
// discovery order.
type Catalog struct {
	byKey map[string]*Clip
	order []string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{byKey: make(map[string]*Clip)}
}

// Add inserts a clip under its key. Keys already present are replaced
// in place without disturbing discovery order.
func (c *Catalog) Add(clip *Clip) {
	if _, exists := c.byKey[clip.Key]; !exists {
		c.order = append(c.order, clip.Key)
	}
	c.byKey[clip.Key] = clip
}

// Get returns the clip for the given key, or nil if none exists.
func (c *Catalog) Get(key string) *Clip {
	return c.byKey[key]
}

// Len returns the number of clips in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Keys returns the clip keys in discovery order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Clips returns the clips in discovery order.
func (c *Catalog) Clips() []*Clip {
	clips := make([]*Clip, 0, len(c.order))
	for _, key := range c.order {
		clips = append(clips, c.byKey[key])
	}
	return clips
}
