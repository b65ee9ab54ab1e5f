package models

import "github.com/lakshmikanth26/new-job-journey/internal/constants"

// Program is a standalone coding-problem entry. Programs have no relation to
// plan tasks; they are their own aggregate root.
type Program struct {
	ID          string                  `json:"id,omitempty"`
	Name        string                  `json:"name"`
	Link        string                  `json:"link"`
	Category    string                  `json:"category"`
	Difficulty  constants.Difficulty    `json:"difficulty,omitempty"`
	Status      constants.ProgramStatus `json:"status"`
	Notes       string                  `json:"notes,omitempty"`
	CompletedAt *string                 `json:"completed_at,omitempty"`
	CreatedAt   *string                 `json:"created_at,omitempty"`
	UpdatedAt   *string                 `json:"updated_at,omitempty"`
}
