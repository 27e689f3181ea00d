package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jiwoolee/contestpilot/internal/constants"
	"github.com/jiwoolee/contestpilot/internal/logger"
	"github.com/jiwoolee/contestpilot/internal/models"
)

// document is the versioned on-disk shape. The version tag allows future
// format migrations without guessing.
type document struct {
	Version   int                       `json:"version"`
	UpdatedAt time.Time                 `json:"updated_at"`
	Contests  map[string]models.Contest `json:"contests"`
	Profile   models.Profile            `json:"profile"`
}

// JSONStore keeps the full collection in memory and persists it to a single
// JSON file after each mutation. Persistence is best-effort: a failed write
// is logged and reported through Flush, but in-memory state stays
// authoritative for the session.
type JSONStore struct {
	path    string
	doc     *document
	saveErr error
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version:  constants.StorageVersion,
		Contests: make(map[string]models.Contest),
	}
	return s.write()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'contestpilot init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.doc.Contests == nil {
		s.doc.Contests = make(map[string]models.Contest)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// Flush returns the last persistence error, if any. Mutations never fail
// on write errors so callers can keep working against memory.
func (s *JSONStore) Flush() error {
	return s.saveErr
}

func (s *JSONStore) write() error {
	s.doc.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

// persist writes the document and downgrades failures to a warning.
func (s *JSONStore) persist() {
	if err := s.write(); err != nil {
		s.saveErr = err
		logger.Warn("Failed to persist storage, in-memory state remains authoritative", "error", err)
		return
	}
	s.saveErr = nil
}

func (s *JSONStore) AddContest(contest models.Contest) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, exists := s.doc.Contests[contest.ID]; exists {
		return fmt.Errorf("contest already exists: %s", contest.ID)
	}
	s.doc.Contests[contest.ID] = contest
	s.persist()
	return nil
}

func (s *JSONStore) GetContest(id string) (models.Contest, error) {
	if s.doc == nil {
		return models.Contest{}, fmt.Errorf("storage not loaded")
	}
	contest, ok := s.doc.Contests[id]
	if !ok {
		return models.Contest{}, fmt.Errorf("contest not found: %s", id)
	}
	return contest, nil
}

func (s *JSONStore) GetAllContests() ([]models.Contest, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	contests := make([]models.Contest, 0, len(s.doc.Contests))
	for _, c := range s.doc.Contests {
		contests = append(contests, c)
	}
	// Stable ordering for display and deterministic tests
	sort.Slice(contests, func(i, j int) bool {
		if contests[i].AddedAt.Equal(contests[j].AddedAt) {
			return contests[i].ID < contests[j].ID
		}
		return contests[i].AddedAt.Before(contests[j].AddedAt)
	})
	return contests, nil
}

func (s *JSONStore) UpdateContest(contest models.Contest) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.doc.Contests[contest.ID]; !ok {
		return fmt.Errorf("contest not found: %s", contest.ID)
	}
	s.doc.Contests[contest.ID] = contest
	s.persist()
	return nil
}

func (s *JSONStore) DeleteContest(id string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.doc.Contests[id]; !ok {
		return fmt.Errorf("contest not found: %s", id)
	}
	delete(s.doc.Contests, id)
	s.persist()
	return nil
}

func (s *JSONStore) GetProfile() (models.Profile, error) {
	if s.doc == nil {
		return models.Profile{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Profile, nil
}

func (s *JSONStore) SaveProfile(profile models.Profile) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Profile = profile
	s.persist()
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
