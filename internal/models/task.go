package models

// Completion is the per-task annotation state kept in the completion ledger.
// The ledger is sparse: a missing entry is equivalent to the zero value.
type Completion struct {
	Completed     bool     `json:"completed"`
	ReferenceLink string   `json:"reference_link,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Attachments   []string `json:"attachments,omitempty"`
	Revised       bool     `json:"revised,omitempty"`
}

// CustomTask is a user-authored task pinned to a plan day.
type CustomTask struct {
	ID          string `json:"id"`
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// PlanTask is one scheduled unit within a static plan day.
type PlanTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// PlanDay is one immutable day of the static study plan.
type PlanDay struct {
	Day   int        `json:"day"`
	Tasks []PlanTask `json:"tasks"`
}

// RemoteTask is the task row shape exposed by the remote gateway. It is an
// independent persistence path and is never reconciled with the local ledger.
type RemoteTask struct {
	ID            string   `json:"id,omitempty"`
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Completed     bool     `json:"completed"`
	CompletedAt   *string  `json:"completed_at,omitempty"`
	Revised       bool     `json:"revised,omitempty"`
	RevisedAt     *string  `json:"revised_at,omitempty"`
	ReferenceLink string   `json:"reference_link,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Attachments   []string `json:"attachments,omitempty"`
	CreatedAt     *string  `json:"created_at,omitempty"`
	UpdatedAt     *string  `json:"updated_at,omitempty"`
}
