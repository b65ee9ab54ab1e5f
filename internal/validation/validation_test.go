package validation

import (
	"testing"

	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/models"
)

func TestValidateCustomTask(t *testing.T) {
	if err := ValidateCustomTask(1, "valid"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateCustomTask(30, "valid"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateCustomTask(0, "valid"); err == nil {
		t.Error("expected day 0 rejected")
	}
	if err := ValidateCustomTask(31, "valid"); err == nil {
		t.Error("expected day 31 rejected")
	}
	if err := ValidateCustomTask(1, "   "); err == nil {
		t.Error("expected whitespace title rejected")
	}
}

func TestValidateProgramStatus(t *testing.T) {
	for _, s := range []constants.ProgramStatus{
		constants.ProgramNotStarted,
		constants.ProgramInProgress,
		constants.ProgramCompleted,
	} {
		if err := ValidateProgramStatus(s); err != nil {
			t.Errorf("status %q rejected: %v", s, err)
		}
	}
	if err := ValidateProgramStatus("Done"); err == nil {
		t.Error("expected unknown status rejected")
	}
	if err := ValidateProgramStatus(""); err == nil {
		t.Error("expected empty status rejected")
	}
}

func TestValidateProjectStatus(t *testing.T) {
	if err := ValidateProjectStatus(constants.ProjectPlanning); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateProjectStatus("Shipped"); err == nil {
		t.Error("expected unknown status rejected")
	}
}

func TestValidateDifficulty(t *testing.T) {
	for _, d := range []constants.Difficulty{
		"",
		constants.DifficultyEasy,
		constants.DifficultyMedium,
		constants.DifficultyHard,
	} {
		if err := ValidateDifficulty(d); err != nil {
			t.Errorf("difficulty %q rejected: %v", d, err)
		}
	}
	if err := ValidateDifficulty("Impossible"); err == nil {
		t.Error("expected unknown difficulty rejected")
	}
}

func TestValidateLink(t *testing.T) {
	if err := ValidateLink(""); err != nil {
		t.Errorf("empty link should pass: %v", err)
	}
	if err := ValidateLink("https://leetcode.com/problems/two-sum"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateLink("not a url"); err == nil {
		t.Error("expected relative/invalid link rejected")
	}
	if err := ValidateLink("/just/a/path"); err == nil {
		t.Error("expected non-absolute link rejected")
	}
}

func TestValidateProgram(t *testing.T) {
	valid := models.Program{
		Name:       "Two Sum",
		Status:     constants.ProgramNotStarted,
		Difficulty: constants.DifficultyEasy,
		Link:       "https://leetcode.com/problems/two-sum",
	}
	if err := ValidateProgram(valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		mut  func(p models.Program) models.Program
	}{
		{"empty name", func(p models.Program) models.Program { p.Name = " "; return p }},
		{"bad status", func(p models.Program) models.Program { p.Status = "Paused"; return p }},
		{"bad difficulty", func(p models.Program) models.Program { p.Difficulty = "Brutal"; return p }},
		{"bad link", func(p models.Program) models.Program { p.Link = "nope"; return p }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateProgram(tc.mut(valid)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateProject(t *testing.T) {
	valid := models.Project{
		Title:    "URL shortener",
		Status:   constants.ProjectPlanning,
		RepoLink: "https://github.com/user/shortener",
	}
	if err := ValidateProject(valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := valid
	bad.Title = ""
	if err := ValidateProject(bad); err == nil {
		t.Error("expected empty title rejected")
	}

	bad = valid
	bad.DeployedLink = "not-a-url"
	if err := ValidateProject(bad); err == nil {
		t.Error("expected bad deployed link rejected")
	}
}
