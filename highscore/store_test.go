package highscore

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) UTCNow() time.Time { return c.now }

var testTime = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), fixedClock{testTime})
}

func restoreFileOps(t *testing.T) {
	t.Helper()
	w, r := writeFile, renameFile
	t.Cleanup(func() {
		writeFile, renameFile = w, r
	})
}

func readRecord(t *testing.T, path string) Record {
	t.Helper()
	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	rec := Record{}
	require.NoError(t, json.Unmarshal(data, &rec))
	return rec
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	require.Equal(t, 0, s.Load())
	_, err := os.Stat(s.Path())
	require.True(t, os.IsNotExist(err), "load must not create the record")
}

func TestLoadExistingRecord(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, ioutil.WriteFile(s.Path(), []byte(`{"value": 42, "updatedAt": "2024-01-01T00:00:00Z"}`), 0644))
	require.Equal(t, 42, s.Load())
}

func TestLoadCorruptRecord(t *testing.T) {
	for _, garbage := range []string{"", "{", "{ foo }", `{"value": "ten"}`} {
		s := newTestStore(t)
		require.NoError(t, ioutil.WriteFile(s.Path(), []byte(garbage), 0644))
		require.Equal(t, 0, s.Load(), "garbage %q", garbage)
	}
}

func TestLoadNegativeRecord(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, ioutil.WriteFile(s.Path(), []byte(`{"value": -3}`), 0644))
	require.Equal(t, 0, s.Load())
}

func TestLoadIsCached(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, ioutil.WriteFile(s.Path(), []byte(`{"value": 7}`), 0644))
	require.Equal(t, 7, s.Load())

	require.NoError(t, os.Remove(s.Path()))
	require.Equal(t, 7, s.Load())
}

func TestUpdateIfHigherMonotonic(t *testing.T) {
	s := newTestStore(t)

	require.True(t, s.UpdateIfHigher(50))
	require.Equal(t, 50, s.Load())

	require.False(t, s.UpdateIfHigher(30))
	require.Equal(t, 50, s.Load())
	require.False(t, s.UpdateIfHigher(50))

	require.True(t, s.UpdateIfHigher(80))
	require.Equal(t, 80, s.Load())

	rec := readRecord(t, s.Path())
	require.Equal(t, 80, rec.Value)
	require.True(t, testTime.Equal(rec.UpdatedAt))

	_, err := os.Stat(s.Path() + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestUpdateIfHigherNonPositive(t *testing.T) {
	s := newTestStore(t)
	require.False(t, s.UpdateIfHigher(0))
	require.False(t, s.UpdateIfHigher(-5))
	_, err := os.Stat(s.Path())
	require.True(t, os.IsNotExist(err))
}

func TestUpdateIfHigherPersistsAcrossStores(t *testing.T) {
	dir := t.TempDir()
	require.True(t, New(dir, fixedClock{testTime}).UpdateIfHigher(12))

	s := New(dir, fixedClock{testTime})
	require.Equal(t, 12, s.Load())
	rec, err := s.Record()
	require.NoError(t, err)
	require.Equal(t, 12, rec.Value)
}

func TestUpdateIfHigherCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "snake")
	s := New(dir, fixedClock{testTime})
	require.True(t, s.UpdateIfHigher(3))
	require.Equal(t, 3, readRecord(t, s.Path()).Value)
}

func TestUpdateIfHigherUnwritableDirectory(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, ioutil.WriteFile(blocker, []byte("x"), 0644))

	s := New(filepath.Join(blocker, "snake"), fixedClock{testTime})
	require.False(t, s.UpdateIfHigher(10))
	require.Equal(t, 0, s.Load())
}

func TestUpdateIfHigherWriteFailureKeepsRecord(t *testing.T) {
	restoreFileOps(t)
	s := newTestStore(t)
	require.True(t, s.UpdateIfHigher(20))

	writeFile = func(name string, data []byte, perm os.FileMode) error {
		if err := writeFileSync(name, data[:len(data)/2], perm); err != nil {
			return err
		}
		return errors.New("disk full")
	}

	require.False(t, s.UpdateIfHigher(25))
	require.Equal(t, 20, s.Load())
	require.Equal(t, 20, readRecord(t, s.Path()).Value)

	_, err := os.Stat(s.Path() + ".tmp")
	require.True(t, os.IsNotExist(err), "temp file must be removed")
}

func TestUpdateIfHigherRenameFallback(t *testing.T) {
	restoreFileOps(t)
	s := newTestStore(t)
	require.True(t, s.UpdateIfHigher(5))

	renameFile = func(from, to string) error {
		return errors.New("rename not supported")
	}

	require.True(t, s.UpdateIfHigher(9))
	require.Equal(t, 9, s.Load())
	require.Equal(t, 9, readRecord(t, s.Path()).Value)

	_, err := os.Stat(s.Path() + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestUpdateIfHigherFallbackFailure(t *testing.T) {
	restoreFileOps(t)
	s := newTestStore(t)

	renameFile = func(from, to string) error {
		return errors.New("rename not supported")
	}
	writeFile = func(name string, data []byte, perm os.FileMode) error {
		if name == s.Path() {
			return errors.New("permission denied")
		}
		return writeFileSync(name, data, perm)
	}

	require.False(t, s.UpdateIfHigher(9))
	require.Equal(t, 0, s.Load())
	_, err := os.Stat(s.Path() + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestUpdateIfHigherConcurrent(t *testing.T) {
	s := newTestStore(t)

	wg := sync.WaitGroup{}
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			s.UpdateIfHigher(score)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 20, s.Load())
	require.Equal(t, 20, readRecord(t, s.Path()).Value)
}

func TestRecordMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Record()
	require.Equal(t, ErrNoRecord, err)
}

func TestRecordCorrupt(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, ioutil.WriteFile(s.Path(), []byte("{"), 0644))
	_, err := s.Record()
	require.Error(t, err)
	require.NotEqual(t, ErrNoRecord, err)
}

func TestNewDefaults(t *testing.T) {
	s := New("", nil)
	require.Equal(t, filepath.Join(DefaultDir(), FileName), s.Path())
}

func TestInstrument(t *testing.T) {
	s := newTestStore(t)
	k := Instrument(s)
	require.Equal(t, 0, k.Load())
	require.True(t, k.UpdateIfHigher(4))
	require.False(t, k.UpdateIfHigher(4))
	require.Equal(t, 4, s.Load())
}
