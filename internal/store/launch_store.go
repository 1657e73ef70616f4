package store

import (
	"path/filepath"
	"sync"

	"speedread/internal/domain"
)

// LaunchFile is the record's file name inside the environment directory.
const LaunchFile = "speedread-launch.json"

// LaunchFileStore keeps the last LaunchRecord in dir.
type LaunchFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewLaunchFileStore returns a store writing into dir.
func NewLaunchFileStore(dir string) *LaunchFileStore { return &LaunchFileStore{dir: dir} }

// Path returns the record's location.
func (s *LaunchFileStore) Path() string { return filepath.Join(s.dir, LaunchFile) }

// SaveLaunch replaces the stored record.
func (s *LaunchFileStore) SaveLaunch(rec domain.LaunchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.Path(), rec, 0o644)
}

// LoadLaunch returns the stored record, or domain.ErrNoRecord when none exists.
func (s *LaunchFileStore) LoadLaunch() (domain.LaunchRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec domain.LaunchRecord
	found, err := readJSON(s.Path(), &rec)
	if err != nil {
		return domain.LaunchRecord{}, err
	}
	if !found {
		return domain.LaunchRecord{}, domain.ErrNoRecord
	}
	return rec, nil
}

var _ domain.LaunchStore = (*LaunchFileStore)(nil)
