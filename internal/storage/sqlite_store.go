package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jiwoolee/contestpilot/internal/constants"
	"github.com/jiwoolee/contestpilot/internal/logger"
	"github.com/jiwoolee/contestpilot/internal/models"
)

// SQLiteStore is a keyed blob store over a single documents table. Each key
// holds one versioned JSON value (the contest collection, the profile). The
// working copy lives in memory; rows are rewritten best-effort after each
// mutation, the same contract as the JSON store.
type SQLiteStore struct {
	path     string
	db       *sql.DB
	contests map[string]models.Contest
	profile  models.Profile
	loaded   bool
	saveErr  error
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS documents (
	key        TEXT PRIMARY KEY,
	version    INTEGER NOT NULL,
	updated_at TEXT NOT NULL,
	value      BLOB NOT NULL
)`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(createDocumentsTable); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.contests = make(map[string]models.Contest)
	s.loaded = true
	if err := s.writeKey(constants.StorageKeyContests, s.contests); err != nil {
		return err
	}
	return s.writeKey(constants.StorageKeyProfile, s.profile)
}

func (s *SQLiteStore) Load() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'contestpilot init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(createDocumentsTable); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	s.contests = make(map[string]models.Contest)
	if err := s.readKey(constants.StorageKeyContests, &s.contests); err != nil {
		return err
	}
	if err := s.readKey(constants.StorageKeyProfile, &s.profile); err != nil {
		return err
	}
	s.loaded = true
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Flush returns the last persistence error, if any.
func (s *SQLiteStore) Flush() error {
	return s.saveErr
}

func (s *SQLiteStore) readKey(key string, dest interface{}) error {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(value, dest); err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) writeKey(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO documents (key, version, updated_at, value) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET version = excluded.version, updated_at = excluded.updated_at, value = excluded.value`,
		key, constants.StorageVersion, time.Now().Format(time.RFC3339), data,
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) persistContests() {
	if err := s.writeKey(constants.StorageKeyContests, s.contests); err != nil {
		s.saveErr = err
		logger.Warn("Failed to persist contests, in-memory state remains authoritative", "error", err)
		return
	}
	s.saveErr = nil
}

func (s *SQLiteStore) AddContest(contest models.Contest) error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}
	if _, exists := s.contests[contest.ID]; exists {
		return fmt.Errorf("contest already exists: %s", contest.ID)
	}
	s.contests[contest.ID] = contest
	s.persistContests()
	return nil
}

func (s *SQLiteStore) GetContest(id string) (models.Contest, error) {
	if !s.loaded {
		return models.Contest{}, fmt.Errorf("storage not loaded")
	}
	contest, ok := s.contests[id]
	if !ok {
		return models.Contest{}, fmt.Errorf("contest not found: %s", id)
	}
	return contest, nil
}

func (s *SQLiteStore) GetAllContests() ([]models.Contest, error) {
	if !s.loaded {
		return nil, fmt.Errorf("storage not loaded")
	}
	contests := make([]models.Contest, 0, len(s.contests))
	for _, c := range s.contests {
		contests = append(contests, c)
	}
	sort.Slice(contests, func(i, j int) bool {
		if contests[i].AddedAt.Equal(contests[j].AddedAt) {
			return contests[i].ID < contests[j].ID
		}
		return contests[i].AddedAt.Before(contests[j].AddedAt)
	})
	return contests, nil
}

func (s *SQLiteStore) UpdateContest(contest models.Contest) error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.contests[contest.ID]; !ok {
		return fmt.Errorf("contest not found: %s", contest.ID)
	}
	s.contests[contest.ID] = contest
	s.persistContests()
	return nil
}

func (s *SQLiteStore) DeleteContest(id string) error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.contests[id]; !ok {
		return fmt.Errorf("contest not found: %s", id)
	}
	delete(s.contests, id)
	s.persistContests()
	return nil
}

func (s *SQLiteStore) GetProfile() (models.Profile, error) {
	if !s.loaded {
		return models.Profile{}, fmt.Errorf("storage not loaded")
	}
	return s.profile, nil
}

func (s *SQLiteStore) SaveProfile(profile models.Profile) error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}
	s.profile = profile
	if err := s.writeKey(constants.StorageKeyProfile, s.profile); err != nil {
		s.saveErr = err
		logger.Warn("Failed to persist profile, in-memory state remains authoritative", "error", err)
		return nil
	}
	s.saveErr = nil
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
