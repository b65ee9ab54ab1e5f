package system

import (
	"context"
	"fmt"
	"time"

	"github.com/lakshmikanth26/new-job-journey/internal/backup"
	"github.com/lakshmikanth26/new-job-journey/internal/cli"
	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/plan"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
	}

	// Check 2: plan integrity
	if err := checkPlan(); err != nil {
		fmt.Printf("❌ Plan data: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Plan data: OK (%d days, %d tasks)\n", constants.PlanDays, plan.TotalTasks())
	}

	// Check 3: start date resolvable
	if err := checkStartDate(ctx); err != nil {
		fmt.Printf("❌ Start date: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Start date: OK (%s, current day %d)\n", ctx.StartDate, ctx.CurrentDay())
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: remote reachable (warning only, local-first by design)
	if !ctx.Gateway.Available() {
		fmt.Printf("⚠ Remote gateway: NOT CONFIGURED\n")
		fmt.Printf("   Set %s and %s (or store the key in the OS keyring) to enable sync\n",
			constants.EnvRemoteURL, constants.EnvRemoteKey)
	} else if err := checkRemote(ctx); err != nil {
		fmt.Printf("⚠ Remote gateway: UNREACHABLE\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Remote gateway: OK\n")
	}

	// Check 6: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ System clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ System clock: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkPlan() error {
	days := plan.Days()
	if len(days) != constants.PlanDays {
		return fmt.Errorf("embedded plan has %d days, expected %d", len(days), constants.PlanDays)
	}
	for _, d := range days {
		if len(d.Tasks) == 0 {
			return fmt.Errorf("plan day %d has no tasks", d.Day)
		}
	}
	return nil
}

func checkStartDate(ctx *cli.Context) error {
	if _, err := time.Parse(constants.DateFormat, ctx.StartDate); err != nil {
		return fmt.Errorf("start date %q is not a valid %s date", ctx.StartDate, constants.DateFormat)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'compass backup create'")
	}
	return nil
}

func checkRemote(ctx *cli.Context) error {
	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := ctx.Gateway.ListTasks(c); err != nil {
		return err
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
