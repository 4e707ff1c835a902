package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipscan/internal/catalog"
	"clipscan/internal/tags"
)

// openTestStore opens a store backed by a temp file to avoid in-memory
// database connection issues.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "clips.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// buildCatalog assembles a catalog from prepared clips, preserving order.
func buildCatalog(clips ...*catalog.Clip) *catalog.Catalog {
	cat := catalog.New()
	for _, c := range clips {
		cat.Add(c)
	}
	return cat
}

func TestWriteCatalog_ClipAndTags(t *testing.T) {
	s := openTestStore(t)

	cat := buildCatalog(&catalog.Clip{
		Key:     "songs/track",
		Parent:  "songs",
		Stem:    "track",
		Formats: []string{".mp3", ".m4a"},
		Tags:    &tags.Metadata{Artist: "A", Album: "B", Title: "T", Year: 2001},
	})

	sum := s.WriteCatalog(cat)
	assert.Equal(t, 1, sum.Processed)
	assert.Empty(t, sum.MissingTags)
	assert.Empty(t, sum.Failures)

	clip, err := s.ClipByKey("songs/track")
	require.NoError(t, err)
	require.NotNil(t, clip)
	assert.Equal(t, "track", clip.Stem)
	assert.Equal(t, "songs", clip.Parent)
	assert.True(t, clip.MP3)
	assert.True(t, clip.M4A)
	assert.False(t, clip.M4R)

	tag, err := s.TagForClip(clip.ID)
	require.NoError(t, err)
	require.NotNil(t, tag)
	assert.Equal(t, "A", tag.Artist)
	assert.Equal(t, "B", tag.Album)
	assert.Equal(t, "T", tag.Title)
	assert.Equal(t, 2001, tag.Year)
}

func TestWriteCatalog_MissingTags(t *testing.T) {
	s := openTestStore(t)

	cat := buildCatalog(
		&catalog.Clip{Key: "a/one", Parent: "a", Stem: "one", Formats: []string{".mp3"}},
		&catalog.Clip{
			Key: "a/two", Parent: "a", Stem: "two", Formats: []string{".m4a"},
			Tags: &tags.Metadata{Title: "Two"},
		},
	)

	sum := s.WriteCatalog(cat)
	assert.Equal(t, 2, sum.Processed)
	assert.Equal(t, []string{"a/one"}, sum.MissingTags)
	assert.Empty(t, sum.Failures)

	clip, err := s.ClipByKey("a/one")
	require.NoError(t, err)
	require.NotNil(t, clip)

	tag, err := s.TagForClip(clip.ID)
	require.NoError(t, err)
	assert.Nil(t, tag)

	tagCount, err := s.TagCount()
	require.NoError(t, err)
	assert.Equal(t, 1, tagCount)
}

func TestWriteCatalog_FormatFlags(t *testing.T) {
	s := openTestStore(t)

	cat := buildCatalog(&catalog.Clip{
		Key: "mix", Parent: ".", Stem: "mix",
		Formats: []string{".mp3", ".wav"},
	})

	sum := s.WriteCatalog(cat)
	require.Empty(t, sum.Failures)

	clip, err := s.ClipByKey("mix")
	require.NoError(t, err)
	require.NotNil(t, clip)
	assert.True(t, clip.MP3)
	assert.False(t, clip.M4A)
	assert.False(t, clip.M4R)
}

func TestWriteCatalog_NullYear(t *testing.T) {
	s := openTestStore(t)

	cat := buildCatalog(&catalog.Clip{
		Key: "undated", Parent: ".", Stem: "undated",
		Formats: []string{".m4r"},
		Tags:    &tags.Metadata{Artist: "A", Album: "B", Title: "T"},
	})

	sum := s.WriteCatalog(cat)
	require.Empty(t, sum.Failures)

	clip, err := s.ClipByKey("undated")
	require.NoError(t, err)
	require.NotNil(t, clip)
	assert.True(t, clip.M4R)

	tag, err := s.TagForClip(clip.ID)
	require.NoError(t, err)
	require.NotNil(t, tag)
	assert.Equal(t, 0, tag.Year)
}

func TestWriteCatalog_Idempotent(t *testing.T) {
	s := openTestStore(t)

	cat := buildCatalog(&catalog.Clip{
		Key: "songs/track", Parent: "songs", Stem: "track",
		Formats: []string{".mp3"},
		Tags:    &tags.Metadata{Artist: "A", Album: "B", Title: "T", Year: 2001},
	})

	first := s.WriteCatalog(cat)
	require.Empty(t, first.Failures)
	second := s.WriteCatalog(cat)
	require.Empty(t, second.Failures)

	clipCount, err := s.ClipCount()
	require.NoError(t, err)
	assert.Equal(t, 1, clipCount)

	tagCount, err := s.TagCount()
	require.NoError(t, err)
	assert.Equal(t, 1, tagCount)
}

func TestWriteCatalog_ContinueOnError(t *testing.T) {
	s := openTestStore(t)

	// Force tag-row failures while clip rows still succeed.
	_, err := s.db.Exec(`DROP TABLE tags`)
	require.NoError(t, err)

	cat := buildCatalog(
		&catalog.Clip{
			Key: "a/bad", Parent: "a", Stem: "bad", Formats: []string{".mp3"},
			Tags: &tags.Metadata{Title: "Bad"},
		},
		&catalog.Clip{Key: "a/good", Parent: "a", Stem: "good", Formats: []string{".mp3"}},
	)

	sum := s.WriteCatalog(cat)
	assert.Equal(t, 2, sum.Processed)
	require.Len(t, sum.Failures, 1)
	assert.Equal(t, "a/bad", sum.Failures[0].Key)
	assert.Error(t, sum.Failures[0].Err)

	// The failing clip must not block the one after it.
	clip, err := s.ClipByKey("a/good")
	require.NoError(t, err)
	assert.NotNil(t, clip)
}

func TestWriteCatalog_Empty(t *testing.T) {
	s := openTestStore(t)

	sum := s.WriteCatalog(buildCatalog())
	assert.Equal(t, 0, sum.Processed)
	assert.Empty(t, sum.MissingTags)
	assert.Empty(t, sum.Failures)

	count, err := s.ClipCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
