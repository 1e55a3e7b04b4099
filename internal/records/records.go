// Package records persists the two-player best scores as two integers,
// one per line: "record1\nrecord2\n".
//
// Reading is fail-soft: a missing, short or malformed source yields zero
// records. The error is still returned so callers can log it.
package records

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/quasilyte/gdata"
)

// ItemKey is the gdata item that holds the records.
const ItemKey = "records"

// ErrMalformed is returned when the stored text is not two integers.
var ErrMalformed = errors.New("records: malformed")

// Records holds the best score of each player.
type Records struct {
	P1 int
	P2 int
}

// Parse reads the first two lines as integers. Surrounding whitespace on a
// line is ignored and extra lines are ignored.
func Parse(data []byte) (Records, error) {
	lines := bytes.Split(data, []byte("\n"))
	if len(lines) < 2 {
		return Records{}, fmt.Errorf("%w: want 2 lines, got %d", ErrMalformed, len(lines))
	}
	r1, err := strconv.Atoi(string(bytes.TrimSpace(lines[0])))
	if err != nil {
		return Records{}, fmt.Errorf("%w: line 1: %v", ErrMalformed, err)
	}
	r2, err := strconv.Atoi(string(bytes.TrimSpace(lines[1])))
	if err != nil {
		return Records{}, fmt.Errorf("%w: line 2: %v", ErrMalformed, err)
	}
	return Records{P1: r1, P2: r2}, nil
}

// Format renders the records in the on-disk format.
func (r Records) Format() []byte {
	return []byte(fmt.Sprintf("%d\n%d\n", r.P1, r.P2))
}

// Merge returns the per-player maximum of r and the given scores.
func (r Records) Merge(score1, score2 int) Records {
	return Records{P1: max(r.P1, score1), P2: max(r.P2, score2)}
}

// Store loads and saves records.
type Store interface {
	// Load never fails: on error it returns zero records alongside the cause.
	Load() (Records, error)
	Save(r Records) error
}

// Open returns a FileStore when path is set, otherwise a gdata-backed store
// under appName.
func Open(path, appName string) (Store, error) {
	if path != "" {
		return NewFileStore(path), nil
	}
	return NewItemStore(appName)
}

// FileStore keeps records in a plain text file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the records file.
func (s *FileStore) Load() (Records, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Records{}, fmt.Errorf("records: read %s: %w", s.path, err)
	}
	return Parse(data)
}

// Save overwrites the records file.
func (s *FileStore) Save(r Records) error {
	if err := os.WriteFile(s.path, r.Format(), 0o644); err != nil {
		return fmt.Errorf("records: write %s: %w", s.path, err)
	}
	return nil
}

// ItemStore keeps records in the per-user application data directory.
type ItemStore struct {
	m *gdata.Manager
}

// NewItemStore opens the gdata manager for appName.
func NewItemStore(appName string) (*ItemStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("records: open data dir: %w", err)
	}
	return &ItemStore{m: m}, nil
}

// Load reads the records item. A missing item is zero records, not an error.
func (s *ItemStore) Load() (Records, error) {
	data, err := s.m.LoadItem(ItemKey)
	if err != nil {
		return Records{}, fmt.Errorf("records: load item: %w", err)
	}
	if data == nil {
		return Records{}, nil
	}
	return Parse(data)
}

// Save writes the records item.
func (s *ItemStore) Save(r Records) error {
	if err := s.m.SaveItem(ItemKey, r.Format()); err != nil {
		return fmt.Errorf("records: save item: %w", err)
	}
	return nil
}

// MemoryStore keeps records in memory. Used when no persistent store can be opened.
type MemoryStore struct {
	Data  []byte
	Saves int
}

// Load parses the in-memory data.
func (s *MemoryStore) Load() (Records, error) {
	if s.Data == nil {
		return Records{}, nil
	}
	return Parse(s.Data)
}

// Save replaces the in-memory data.
func (s *MemoryStore) Save(r Records) error {
	s.Data = r.Format()
	s.Saves++
	return nil
}
