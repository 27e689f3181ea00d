package storage

import "github.com/jiwoolee/contestpilot/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Contests
	AddContest(models.Contest) error
	GetContest(id string) (models.Contest, error)
	GetAllContests() ([]models.Contest, error)
	UpdateContest(models.Contest) error
	DeleteContest(id string) error

	// Profile
	GetProfile() (models.Profile, error)
	SaveProfile(models.Profile) error

	// Utils
	GetConfigPath() string
}
