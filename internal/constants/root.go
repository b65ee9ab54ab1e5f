package constants

// ProgramStatus represents the lifecycle status of a coding-problem entry
type ProgramStatus string

// ProjectStatus represents the lifecycle status of a project entry
type ProjectStatus string

// Difficulty represents the difficulty rating of a coding problem
type Difficulty string

const (
	AppName            = "compass"
	Version            = "v1.2.0"
	DefaultConfigPath  = "~/.config/compass/compass.json"
	DefaultKeyringUser = "remote-access-key"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// PlanDays is the fixed length of the study plan
	PlanDays = 30

	// DefaultStartDate is used when COMPASS_START_DATE is unset
	DefaultStartDate = "2025-10-16"

	// Environment variables
	EnvStartDate = "COMPASS_START_DATE"
	EnvRemoteURL = "COMPASS_REMOTE_URL"
	EnvRemoteKey = "COMPASS_REMOTE_KEY"

	// Local store keys, one whole-JSON blob per collection
	KeyCompletions = "taskCompletions"
	KeyCustomTasks = "customTasks"
	KeyPrograms    = "programs"
	KeyProjects    = "projects"

	// Attachment storage layout on the remote
	StorageBucket    = "job-docs"
	AttachmentFolder = "task-attachments"

	// MaxUploadSizeMB is the per-file upload limit
	MaxUploadSizeMB = 10

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "compass-"

	// Default HTTP port for 'compass serve'
	DefaultServePort = 8990

	// Custom task keys are "custom-<id>"; static keys are "<day>-<index>"
	CustomKeyPrefix = "custom-"

	// Program statuses
	ProgramNotStarted ProgramStatus = "Not Started"
	ProgramInProgress ProgramStatus = "In Progress"
	ProgramCompleted  ProgramStatus = "Completed"

	// Project statuses
	ProjectPlanning   ProjectStatus = "Planning"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"

	// Difficulties
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)
