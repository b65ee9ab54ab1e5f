package models

import "github.com/lakshmikanth26/new-job-journey/internal/constants"

// Project is a standalone project entry, independent of plan tasks.
type Project struct {
	ID           string                  `json:"id,omitempty"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	RepoLink     string                  `json:"repo_link,omitempty"`
	DeployedLink string                  `json:"deployed_link,omitempty"`
	Technologies []string                `json:"technologies"`
	Status       constants.ProjectStatus `json:"status"`
	Notes        string                  `json:"notes,omitempty"`
	CompletedAt  *string                 `json:"completed_at,omitempty"`
	CreatedAt    *string                 `json:"created_at,omitempty"`
	UpdatedAt    *string                 `json:"updated_at,omitempty"`
}
