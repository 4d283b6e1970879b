package initializer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writerUnit writes one file and reports it.
type writerUnit struct {
	fakeUnit
	fileName string
}

func (w *writerUnit) Execute(_ context.Context, run *Context) (*Result, error) {
	w.executed = true
	path := filepath.Join(run.TargetDirectory, w.fileName)
	if err := os.WriteFile(path, []byte("content"), 0o600); err != nil {
		return nil, err
	}
	res := NewSuccess("wrote " + w.fileName)
	res.AddFile(path)
	return res, nil
}

func newWriterUnit(id string, order int, fileName string) *writerUnit {
	return &writerUnit{
		fakeUnit: fakeUnit{id: id, name: id, order: order, applies: true},
		fileName: fileName,
	}
}

func TestInitializeProjectHappyPath(t *testing.T) {
	r := NewRegistry()
	r.Register(newWriterUnit("writer", 10, "out.txt"))
	svc := NewService(r, t.TempDir())

	target := filepath.Join(t.TempDir(), "demo")
	run := NewContext("demo", "console", target, false, nil)
	sum := svc.InitializeProject(context.Background(), run)

	if !sum.Success {
		t.Fatalf("summary should succeed, got error %q", sum.ErrorMessage)
	}
	if sum.FilesCreated() != 1 {
		t.Errorf("FilesCreated() = %d, want 1", sum.FilesCreated())
	}
	if sum.ErrorsCount() != 0 {
		t.Errorf("ErrorsCount() = %d, want 0", sum.ErrorsCount())
	}
	if sum.RunID == "" {
		t.Error("summary should carry a run id")
	}
	if sum.EndTime.Before(sum.StartTime) {
		t.Error("EndTime should not precede StartTime")
	}
	if _, err := os.Stat(filepath.Join(target, "out.txt")); err != nil {
		t.Error("unit output file should exist")
	}
}

func TestInitializeProjectRejectsNonEmptyTarget(t *testing.T) {
	r := NewRegistry()
	unit := newWriterUnit("writer", 10, "out.txt")
	r.Register(unit)
	svc := NewService(r, t.TempDir())

	target := t.TempDir()
	if err := os.WriteFile(filepath.Join(target, "occupied.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	run := NewContext("demo", "console", target, false, nil)
	sum := svc.InitializeProject(context.Background(), run)

	if sum.Success {
		t.Fatal("summary should fail for a non-empty target without force")
	}
	if len(sum.Results) != 0 {
		t.Errorf("no units should run, got %d results", len(sum.Results))
	}
	if !strings.Contains(sum.ErrorMessage, "not empty") {
		t.Errorf("error message should mention 'not empty', got %q", sum.ErrorMessage)
	}
	if unit.executed {
		t.Error("unit must not execute after validation failure")
	}
}

func TestInitializeProjectRejectsBadName(t *testing.T) {
	svc := NewService(NewRegistry(), t.TempDir())
	run := NewContext("COM1", "console", filepath.Join(t.TempDir(), "p"), false, nil)

	sum := svc.InitializeProject(context.Background(), run)
	if sum.Success {
		t.Fatal("reserved name should fail the run")
	}
	if !strings.Contains(sum.ErrorMessage, "reserved") {
		t.Errorf("error should mention reserved name, got %q", sum.ErrorMessage)
	}
}

func TestInitializeProjectCreatesMissingTarget(t *testing.T) {
	svc := NewService(NewRegistry(), t.TempDir())
	target := filepath.Join(t.TempDir(), "brand", "new")

	sum := svc.InitializeProject(context.Background(), NewContext("demo", "console", target, false, nil))
	if !sum.Success {
		t.Fatalf("run should succeed: %q", sum.ErrorMessage)
	}
	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		t.Error("target directory should exist after the run")
	}
}

func TestInitializeProjectOverallSuccessIsConjunction(t *testing.T) {
	r := NewRegistry()
	failing := &fakeUnit{id: "soft", name: "soft", order: 60, applies: true, result: NewFailure("nope")}
	r.Register(failing)
	r.Register(okUnit("fine", 70))
	svc := NewService(r, t.TempDir())

	sum := svc.InitializeProject(context.Background(), NewContext("demo", "console", filepath.Join(t.TempDir(), "p"), false, nil))

	if sum.Success {
		t.Error("any failed result should fail the summary")
	}
	if len(sum.Results) != 2 {
		t.Errorf("both units should have run, got %d results", len(sum.Results))
	}
}

func TestInitializeProjectSurfacesPlanningWarnings(t *testing.T) {
	r := NewRegistry()
	broken := &fakeUnit{id: "broken", name: "broken", order: 10, applyErr: os.ErrPermission}
	r.Register(broken)
	svc := NewService(r, t.TempDir())

	sum := svc.InitializeProject(context.Background(), NewContext("demo", "console", filepath.Join(t.TempDir(), "p"), false, nil))

	if !sum.Success {
		t.Error("an excluded unit alone should not fail the run")
	}
	if len(sum.Warnings) != 1 {
		t.Errorf("want one planning warning, got %v", sum.Warnings)
	}
}

func TestSummaryCountsDistinctFiles(t *testing.T) {
	sum := &Summary{
		Results: []*Result{
			{Success: true, AffectedFiles: []string{"a/b.txt", "c.txt"}},
			{Success: true, AffectedFiles: []string{"a/b.txt", "d.txt"}},
		},
	}
	if got := sum.FilesCreated(); got != 3 {
		t.Errorf("FilesCreated() = %d, want 3 distinct paths", got)
	}
}

func TestSummaryCounters(t *testing.T) {
	sum := &Summary{
		Results: []*Result{
			{Success: true, Warnings: []string{"w1", "w2"}},
			{Success: false, Errors: []string{"e1"}},
		},
	}
	if sum.WarningsCount() != 2 {
		t.Errorf("WarningsCount() = %d, want 2", sum.WarningsCount())
	}
	if sum.ErrorsCount() != 1 {
		t.Errorf("ErrorsCount() = %d, want 1", sum.ErrorsCount())
	}
}
