package constants

// Thresholds driving schedule generation and focus ranking.
const (
	// Timelines shorter than this many work days use the merged 3-phase template
	ShortTimelineDays = 14

	// Schedule pressure tiers for buffer-day selection
	HighSchedulePressure   = 70
	MediumSchedulePressure = 50

	// Difficulty at or above this boosts research/ideation ratios
	HighDifficulty = 70

	// Pressure at or above this boosts the submission phase ratio
	SubmissionPressureThreshold = 60

	// Buffer days reserved before the deadline. Higher pressure trades
	// safety margin for usable work time.
	BufferDaysHighPressure   = 2
	BufferDaysMediumPressure = 3
	BufferDaysLowPressure    = 4

	MinimumWorkDays = 1
	DaysPerWeek     = 7

	// Feasibility ratio tiers (available hours / estimated hours)
	FeasibilityComfortable = 1.3
	FeasibilityAchievable  = 1.0
	FeasibilityTight       = 0.7

	// A warning fires for short timelines only when the workload is non-trivial
	HighWorkloadHours = 30

	// Logged hours under this fraction of the expected checkpoint count as behind
	ProgressBehindThreshold = 0.8

	// Urgency tiers by days left until deadline
	UrgentDays        = 7
	MediumUrgencyDays = 14
)

// Contest categories the phase-ratio heuristics recognize.
const (
	CategoryDesign  = "디자인"
	CategoryDev     = "개발"
	CategoryAIML    = "AI/ML"
	CategoryGeneral = "일반"
)

// Default analysis values applied when the upstream payload omits fields.
const (
	DefaultEstimatedHours   = 40
	DefaultDifficulty       = 50
	DefaultSchedulePressure = 50
)
