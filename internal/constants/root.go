package constants

const (
	AppName           = "contestpilot"
	DefaultConfigPath = "~/.config/contestpilot/contestpilot.json"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage document keys
	StorageKeyContests = "contests"
	StorageKeyProfile  = "profile"

	// StorageVersion tags every persisted document so future format changes can migrate
	StorageVersion = 1
)
