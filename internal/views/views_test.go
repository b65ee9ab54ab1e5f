package views

import (
	"path/filepath"
	"testing"

	"github.com/lakshmikanth26/new-job-journey/internal/ledger"
	"github.com/lakshmikanth26/new-job-journey/internal/plan"
	"github.com/lakshmikanth26/new-job-journey/internal/registry"
	"github.com/lakshmikanth26/new-job-journey/internal/storage"
)

func newTestAggregator(t *testing.T) (*Aggregator, *ledger.Ledger, *registry.Registry) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "compass.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	led := ledger.New(store)
	reg := registry.New(store, led)
	return New(led, reg), led, reg
}

func TestDay_StaticThenCustom(t *testing.T) {
	agg, led, reg := newTestAggregator(t)

	planDay, ok := plan.ForDay(1)
	if !ok {
		t.Fatal("day 1 missing from plan")
	}

	task, err := reg.Add(1, "extra drill", "", "Custom")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	led.ToggleCompleted(ledger.Key(1, 0))

	got := agg.Day(1)
	if len(got) != len(planDay.Tasks)+1 {
		t.Fatalf("expected %d tasks, got %d", len(planDay.Tasks)+1, len(got))
	}

	if got[0].Key != "1-0" || !got[0].Completion.Completed {
		t.Errorf("first static task = %+v", got[0])
	}
	if got[0].Custom {
		t.Error("static task flagged custom")
	}

	last := got[len(got)-1]
	if !last.Custom || last.CustomID != task.ID {
		t.Errorf("custom task should come last, got %+v", last)
	}
	if last.Key != ledger.CustomKey(task.ID) {
		t.Errorf("custom key = %q", last.Key)
	}
}

func TestDay_OutOfRangeIsEmptyStatic(t *testing.T) {
	agg, _, _ := newTestAggregator(t)
	if got := agg.Day(99); len(got) != 0 {
		t.Errorf("expected no tasks for day 99, got %d", len(got))
	}
}

func TestProgressAndOverall(t *testing.T) {
	agg, led, _ := newTestAggregator(t)

	led.ToggleCompleted(ledger.Key(1, 0))
	led.ToggleCompleted(ledger.Key(2, 0))

	progress := agg.Progress()
	if len(progress) != len(plan.Days()) {
		t.Fatalf("expected one entry per plan day, got %d", len(progress))
	}
	if progress[0].Completed != 1 {
		t.Errorf("day 1 completed = %d, want 1", progress[0].Completed)
	}

	completed, total := agg.Overall()
	if completed != 2 {
		t.Errorf("overall completed = %d, want 2", completed)
	}
	if total != plan.TotalTasks() {
		t.Errorf("overall total = %d, want %d", total, plan.TotalTasks())
	}
}

func TestOverall_CountsCustomTasks(t *testing.T) {
	agg, led, reg := newTestAggregator(t)

	task, _ := reg.Add(3, "custom one", "", "Custom")
	led.ToggleCompleted(ledger.CustomKey(task.ID))

	completed, total := agg.Overall()
	if completed != 1 {
		t.Errorf("completed = %d, want 1", completed)
	}
	if total != plan.TotalTasks()+1 {
		t.Errorf("total = %d, want %d", total, plan.TotalTasks()+1)
	}
}

func TestCompleted_SearchAndCategory(t *testing.T) {
	agg, led, reg := newTestAggregator(t)

	a, _ := reg.Add(1, "Binary Search Drill", "lower bound variants", "DSA")
	b, _ := reg.Add(1, "System design reading", "", "System Design")
	led.ToggleCompleted(ledger.CustomKey(a.ID))
	led.ToggleCompleted(ledger.CustomKey(b.ID))

	if got := agg.Completed("binary", ""); len(got) != 1 || got[0].CustomID != a.ID {
		t.Errorf("search result = %+v", got)
	}
	if got := agg.Completed("BOUND", ""); len(got) != 1 {
		t.Errorf("search should match descriptions case-insensitively, got %+v", got)
	}
	if got := agg.Completed("", "System Design"); len(got) != 1 || got[0].CustomID != b.ID {
		t.Errorf("category filter result = %+v", got)
	}
	if got := agg.Completed("nothing matches this", ""); len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestRevisionCounts(t *testing.T) {
	agg, led, reg := newTestAggregator(t)

	a, _ := reg.Add(1, "one", "", "Custom")
	b, _ := reg.Add(1, "two", "", "Custom")
	led.ToggleCompleted(ledger.CustomKey(a.ID))
	led.ToggleCompleted(ledger.CustomKey(b.ID))
	led.ToggleRevised(ledger.CustomKey(a.ID))

	revised, pending := agg.RevisionCounts()
	if revised != 1 || pending != 1 {
		t.Errorf("revised = %d, pending = %d", revised, pending)
	}
}

func TestCategories_SortedDistinct(t *testing.T) {
	agg, _, reg := newTestAggregator(t)
	reg.Add(1, "x", "", "Zezzz Custom Category")

	cats := agg.Categories()
	if len(cats) < 2 {
		t.Fatalf("expected plan categories plus the custom one, got %v", cats)
	}
	for i := 1; i < len(cats); i++ {
		if cats[i-1] >= cats[i] {
			t.Errorf("categories not sorted/distinct at %d: %v", i, cats)
		}
	}

	found := false
	for _, c := range cats {
		if c == "Zezzz Custom Category" {
			found = true
		}
	}
	if !found {
		t.Error("custom category missing")
	}
}

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{1, 3, 33},
		{2, 3, 67},
		{10, 10, 100},
	}
	for _, tc := range cases {
		if got := ProgressPercent(tc.completed, tc.total); got != tc.want {
			t.Errorf("ProgressPercent(%d, %d) = %d, want %d", tc.completed, tc.total, got, tc.want)
		}
	}
}
