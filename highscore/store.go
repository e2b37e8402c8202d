package highscore

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// FileName is the name of the record file inside the data directory.
const FileName = "highScore.json"

// ErrNoRecord is returned by Record when nothing has been saved yet.
var ErrNoRecord = errors.New("highscore: no record")

// Swapped in tests.
var (
	writeFile  = writeFileSync
	renameFile = os.Rename
)

// Record is the persisted best score.
type Record struct {
	Value     int       `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clock stamps high score updates.
type Clock interface {
	UTCNow() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// UTCNow returns the current time in UTC.
func (SystemClock) UTCNow() time.Time { return time.Now().UTC() }

// Keeper loads the best score and records better ones.
type Keeper interface {
	Load() int
	UpdateIfHigher(score int) bool
}

// DefaultDir returns the per-user application data directory for the game.
func DefaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "snake")
	}
	return filepath.Join(homeDir(), ".snake")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// Store is a file backed Keeper. The first Load reads the file, later calls
// are served from memory. Failures never reach the caller: a record that can't
// be read counts as 0 and a record that can't be written is skipped.
type Store struct {
	directory string
	path      string
	clock     Clock

	lock   sync.Mutex
	loaded bool
	cached int
}

// New returns a store keeping its record in directory. An empty directory
// means DefaultDir.
func New(directory string, clock Clock) *Store {
	if directory == "" {
		directory = DefaultDir()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Store{
		directory: directory,
		path:      filepath.Join(directory, FileName),
		clock:     clock,
	}
}

// Path is the location of the record file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the best score, 0 if there is none or it can't be read.
func (s *Store) Load() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.load()
}

func (s *Store) load() int {
	if s.loaded {
		return s.cached
	}

	value := 0
	record, err := s.read()
	switch {
	case err == ErrNoRecord:
	case err != nil:
		log.WithError(err).WithField("path", s.path).Warn("ignoring unreadable high score")
	case record.Value > 0:
		value = record.Value
	}

	s.cached = value
	s.loaded = true
	return value
}

// UpdateIfHigher saves score when it beats the current best and reports
// whether it did.
func (s *Store) UpdateIfHigher(score int) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if score <= s.load() {
		return false
	}

	if err := s.save(score); err != nil {
		log.WithError(err).
			WithField("path", s.path).
			WithField("score", score).
			Warn("failed to save high score")
		return false
	}

	s.cached = score
	return true
}

// Record reads the record file directly, bypassing the cache.
func (s *Store) Record() (Record, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.read()
}

func (s *Store) read() (Record, error) {
	data, err := ioutil.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Record{}, ErrNoRecord
	}
	if err != nil {
		return Record{}, errors.Wrapf(err, "read %s", s.path)
	}

	record := Record{}
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, errors.Wrapf(err, "decode %s", s.path)
	}
	return record, nil
}

// save stages the record in a sibling .tmp file and renames it over the live
// file. If the rename fails the live file is overwritten in place. The .tmp
// file never outlives the call.
func (s *Store) save(value int) error {
	if err := os.MkdirAll(s.directory, 0755); err != nil {
		return errors.Wrapf(err, "create %s", s.directory)
	}

	data, err := json.MarshalIndent(Record{Value: value, UpdatedAt: s.clock.UTCNow()}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode high score")
	}

	tmp := s.path + ".tmp"
	defer removeTemp(tmp)

	if err := writeFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}

	if err := renameFile(tmp, s.path); err != nil {
		log.WithError(err).WithField("path", s.path).Debug("replace failed, overwriting record")
		if err := writeFile(s.path, data, 0644); err != nil {
			return errors.Wrapf(err, "overwrite %s", s.path)
		}
	}
	return nil
}

func removeTemp(name string) {
	err := os.Remove(name)
	if err != nil && !os.IsNotExist(err) {
		log.WithError(err).WithField("path", name).Debug("failed to remove temp file")
	}
}

func writeFileSync(name string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
