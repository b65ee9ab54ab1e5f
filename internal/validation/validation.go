package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/models"
)

// ValidateCustomTask checks user input before it reaches the registry.
func ValidateCustomTask(day int, title string) error {
	if day < 1 || day > constants.PlanDays {
		return fmt.Errorf("day must be between 1 and %d", constants.PlanDays)
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// ValidateProgramStatus checks the coding-problem status enum.
func ValidateProgramStatus(status constants.ProgramStatus) error {
	switch status {
	case constants.ProgramNotStarted, constants.ProgramInProgress, constants.ProgramCompleted:
		return nil
	}
	return fmt.Errorf("invalid program status %q (expected %q, %q, or %q)",
		status, constants.ProgramNotStarted, constants.ProgramInProgress, constants.ProgramCompleted)
}

// ValidateProjectStatus checks the project status enum.
func ValidateProjectStatus(status constants.ProjectStatus) error {
	switch status {
	case constants.ProjectPlanning, constants.ProjectInProgress, constants.ProjectCompleted:
		return nil
	}
	return fmt.Errorf("invalid project status %q (expected %q, %q, or %q)",
		status, constants.ProjectPlanning, constants.ProjectInProgress, constants.ProjectCompleted)
}

// ValidateDifficulty checks the optional difficulty rating.
func ValidateDifficulty(d constants.Difficulty) error {
	switch d {
	case "", constants.DifficultyEasy, constants.DifficultyMedium, constants.DifficultyHard:
		return nil
	}
	return fmt.Errorf("invalid difficulty %q (expected %q, %q, or %q)",
		d, constants.DifficultyEasy, constants.DifficultyMedium, constants.DifficultyHard)
}

// ValidateLink checks that a non-empty link parses as an absolute URL.
func ValidateLink(link string) error {
	if link == "" {
		return nil
	}
	u, err := url.Parse(link)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("invalid link: %s", link)
	}
	return nil
}

// ValidateProgram checks all user-editable program fields.
func ValidateProgram(p models.Program) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("program name is required")
	}
	if err := ValidateProgramStatus(p.Status); err != nil {
		return err
	}
	if err := ValidateDifficulty(p.Difficulty); err != nil {
		return err
	}
	return ValidateLink(p.Link)
}

// ValidateProject checks all user-editable project fields.
func ValidateProject(p models.Project) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("project title is required")
	}
	if err := ValidateProjectStatus(p.Status); err != nil {
		return err
	}
	if err := ValidateLink(p.RepoLink); err != nil {
		return err
	}
	return ValidateLink(p.DeployedLink)
}
