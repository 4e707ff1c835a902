package store

import (
	"database/sql"

	"clipscan/internal/db"
)

// ClipRow mirrors a stored clips row.
type ClipRow struct {
	ID     int64
	Key    string
	Stem   string
	Parent string
	MP3    bool
	M4A    bool
	M4R    bool
}

// TagRow mirrors a stored tags row. Year is 0 when the column is NULL.
type TagRow struct {
	ClipID int64
	Artist string
	Album  string
	Title  string
	Year   int
}

// ClipByKey returns the stored clip for key, or nil if none exists.
func (s *Store) ClipByKey(key string) (*ClipRow, error) {
	row := s.db.QueryRow(`
		SELECT id, key, stem, parent, mp3, m4a, m4r
		FROM clips
		WHERE key = ? LIMIT 1
	`, key)

	var c ClipRow
	err := row.Scan(&c.ID, &c.Key, &c.Stem, &c.Parent, &c.MP3, &c.M4A, &c.M4R)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// TagForClip returns the tags row linked to clipID, or nil if none exists.
func (s *Store) TagForClip(clipID int64) (*TagRow, error) {
	row := s.db.QueryRow(`
		SELECT clip_id, artist, album, title, year
		FROM tags
		WHERE clip_id = ? LIMIT 1
	`, clipID)

	var t TagRow
	var artist, album, title sql.NullString
	var year sql.NullInt64
	err := row.Scan(&t.ClipID, &artist, &album, &title, &year)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.Artist = db.NullStringValue(artist)
	t.Album = db.NullStringValue(album)
	t.Title = db.NullStringValue(title)
	t.Year = int(db.NullInt64Value(year))
	return &t, nil
}

// ClipCount returns the number of stored clips.
func (s *Store) ClipCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM clips`).Scan(&count)
	return count, err
}

// TagCount returns the number of stored tag rows.
func (s *Store) TagCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM tags`).Scan(&count)
	return count, err
}
