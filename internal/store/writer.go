package store

import (
	"fmt"

	"clipscan/internal/catalog"
	"clipscan/internal/db"
	"clipscan/internal/tags"
)

// Failure records a clip whose rows could not be written.
type Failure struct {
	Key string
	Err error
}

// Summary reports the outcome of a write pass over a catalog.
type Summary struct {
	Processed   int       // clips attempted
	MissingTags []string  // keys of clips with no extractable metadata
	Failures    []Failure // clips whose rows could not be written
}

// WriteCatalog writes one clips row per clip and, when metadata is
// present, one linked tags row. Writes are idempotent: re-running
// against the same database updates rows in place. A failure on one
// clip is recorded in the summary and never stops the remaining clips.
func (s *Store) WriteCatalog(cat *catalog.Catalog) Summary {
	var sum Summary
	for _, clip := range cat.Clips() {
		sum.Processed++
		if err := s.writeClip(clip); err != nil {
			sum.Failures = append(sum.Failures, Failure{Key: clip.Key, Err: err})
			continue
		}
		if clip.Tags == nil {
			sum.MissingTags = append(sum.MissingTags, clip.Key)
		}
	}
	return sum
}

func (s *Store) writeClip(clip *catalog.Clip) error {
	_, err := s.db.Exec(`
		INSERT INTO clips (key, stem, parent, mp3, m4a, m4r)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			stem = excluded.stem,
			parent = excluded.parent,
			mp3 = excluded.mp3,
			m4a = excluded.m4a,
			m4r = excluded.m4r
	`, clip.Key, clip.Stem, clip.Parent,
		clip.HasFormat(tags.ExtMP3), clip.HasFormat(tags.ExtM4A), clip.HasFormat(tags.ExtM4R))
	if err != nil {
		return fmt.Errorf("insert clip: %w", err)
	}

	if clip.Tags == nil {
		return nil
	}

	// Re-query the generated id by key instead of trusting the
	// driver's LastInsertId; keeps the writer independent of a
	// specific store's identity mechanism.
	var id int64
	if err := s.db.QueryRow(`SELECT id FROM clips WHERE key = ? LIMIT 1`, clip.Key).Scan(&id); err != nil {
		return fmt.Errorf("look up clip id: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO tags (clip_id, artist, album, title, year)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(clip_id) DO UPDATE SET
			artist = excluded.artist,
			album = excluded.album,
			title = excluded.title,
			year = excluded.year
	`, id, clip.Tags.Artist, clip.Tags.Album, clip.Tags.Title, db.NullableInt64(int64(clip.Tags.Year)))
	if err != nil {
		return fmt.Errorf("insert tags: %w", err)
	}
	return nil
}
