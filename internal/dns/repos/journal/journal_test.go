package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) (*Journal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j, path
}

func TestRecordFirstSighting(t *testing.T) {
	j, _ := openTestJournal(t)

	first, err := j.Record("example.com.")
	require.NoError(t, err)
	assert.True(t, first)

	first, err = j.Record("example.com.")
	require.NoError(t, err)
	assert.False(t, first)

	n, err := j.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecordIsCaseInsensitive(t *testing.T) {
	j, _ := openTestJournal(t)

	first, err := j.Record("Example.COM.")
	require.NoError(t, err)
	assert.True(t, first)

	first, err = j.Record("example.com")
	require.NoError(t, err)
	assert.False(t, first, "case and trailing dot variants are the same name")
}

func TestSightingsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(path)
	require.NoError(t, err)
	first, err := j.Record("persisted.example.com.")
	require.NoError(t, err)
	assert.True(t, first)
	require.NoError(t, j.Close())

	j, err = Open(path)
	require.NoError(t, err)
	defer j.Close()

	first, err = j.Record("persisted.example.com.")
	require.NoError(t, err)
	assert.False(t, first, "reopened journal must remember earlier sightings")

	first, err = j.Record("new.example.com.")
	require.NoError(t, err)
	assert.True(t, first)
}

func TestRecordConcurrent(t *testing.T) {
	j, _ := openTestJournal(t)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for n := 0; n < 50; n++ {
				if _, err := j.Record("concurrent.example.com."); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-done)
	}

	n, err := j.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "journal.db"))
	assert.Error(t, err)
}
