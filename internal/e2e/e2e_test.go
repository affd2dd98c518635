package e2e_test

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauern/taskgen/internal/e2e"
	"github.com/klauern/taskgen/internal/generator"
	"github.com/klauern/taskgen/internal/stub"
)

var updateGolden = flag.Bool("update", false, "update golden files")

const testdata = "testdata"

func TestMain(m *testing.M) {
	flag.Parse()
	e2e.SetUpdateGolden(*updateGolden)
	os.Exit(m.Run())
}

// goldenDir returns the testdata directory. Harness tests change the working
// directory, so it is resolved before the harness is created.
func goldenDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(testdata)
	if err != nil {
		t.Fatalf("failed to resolve testdata: %v", err)
	}
	return dir
}

// TestVersionCommand verifies the version command works correctly.
func TestVersionCommand(t *testing.T) {
	h := e2e.NewHarness(t)

	result := h.Run("version")

	e2e.AssertSuccess(t, result)
	e2e.AssertOutputContains(t, result, "taskgen version")
}

// TestMakeTaskDefaults generates the classic example with every option
// left at its default and the destination typed at the prompt.
func TestMakeTaskDefaults(t *testing.T) {
	golden := goldenDir(t)
	h := e2e.NewHarness(t)
	out := h.TempFixture()

	result := h.RunWithStdin(out.Path("")+"\n", "make:task", "CrunzTest")

	e2e.AssertSuccess(t, result)
	e2e.AssertExitCode(t, result, 0)
	e2e.AssertOutputContains(t, result, generator.DestinationQuestion)
	e2e.AssertOutputContains(t, result, "The task file generated successfully")
	e2e.AssertFileMatches(t, out.Path("CrunzTestTasks.php"), golden, "basic_task")
}

// TestMakeTaskEmptyAnswerUsesSourcePath verifies that pressing enter saves
// into the configured source path below the working directory.
func TestMakeTaskEmptyAnswerUsesSourcePath(t *testing.T) {
	h := e2e.NewHarness(t)
	project := h.ProjectFixture()

	result := h.RunWithStdin("\n", "make:task", "Backup")

	e2e.AssertSuccess(t, result)
	if !project.Exists(filepath.Join("tasks", "BackupTasks.php")) {
		t.Errorf("expected tasks/BackupTasks.php in %s", project.Path(""))
	}
}

// TestMakeTaskClosure verifies every option reaches the closure stub.
func TestMakeTaskClosure(t *testing.T) {
	golden := goldenDir(t)
	h := e2e.NewHarness(t)
	out := h.TempFixture()

	result := h.Run("make:task",
		"--type", "closure",
		"--frequency", "daily",
		"--constraint", "fridays()",
		"--run", "php artisan report:send",
		"--in", "/srv/reports",
		"--description", "Weekly report",
		"--output", out.Path(""),
		"Report",
	)

	e2e.AssertSuccess(t, result)
	e2e.AssertOutputNotContains(t, result, generator.DestinationQuestion)
	e2e.AssertOutputContains(t, result, "Schedule: 0 0 * * 5")
	e2e.AssertFileMatches(t, out.Path("ReportTasks.php"), golden, "closure_task")
}

// TestMakeTaskProjectStub verifies a stub under src/Stubs wins over the
// built-in one.
func TestMakeTaskProjectStub(t *testing.T) {
	h := e2e.NewHarness(t)
	project := h.ProjectFixture()
	project.WriteStub("basic", "// DummyDescription\n$schedule->run('DummyCommand')->DummyFrequency();\n")

	result := h.Run("make:task", "--no-input", "--description", "Custom stub", "Backup")

	e2e.AssertSuccess(t, result)
	e2e.AssertFileEquals(t, project.Path(filepath.Join("tasks", "BackupTasks.php")),
		"// Custom stub\n$schedule->run('command/to/execute')->everyThirtyMinutes();\n")
}

// TestMakeTaskUnknownType verifies the failure path writes nothing and
// exits non-zero.
func TestMakeTaskUnknownType(t *testing.T) {
	h := e2e.NewHarness(t)
	out := h.TempFixture()

	result := h.RunWithStdin(out.Path("")+"\n", "make:task", "--type", "doesNotExist", "CrunzTest")

	e2e.AssertError(t, result)
	e2e.AssertExitCode(t, result, 1)
	if !errors.Is(result.Err, stub.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", result.Err)
	}
	e2e.AssertOutputContains(t, result, "There was a problem when generating the file. Please check your command.")
	e2e.AssertOutputNotContains(t, result, generator.DestinationQuestion)
	if out.Exists("CrunzTestTasks.php") {
		t.Error("expected no task file to be written")
	}
}

// TestMakeTaskMissingName verifies the task file argument is required.
func TestMakeTaskMissingName(t *testing.T) {
	h := e2e.NewHarness(t)

	result := h.Run("make:task")

	e2e.AssertError(t, result)
	e2e.AssertErrorContains(t, result, "missing task file argument")
}

// TestMakeTaskDryRun verifies nothing is written on a dry run.
func TestMakeTaskDryRun(t *testing.T) {
	h := e2e.NewHarness(t)
	project := h.ProjectFixture()

	result := h.Run("make:task", "--dry-run", "Backup")

	e2e.AssertSuccess(t, result)
	e2e.AssertOutputContains(t, result, "->everyThirtyMinutes()")
	if project.Exists("tasks") {
		t.Error("dry run must not create the source directory")
	}
}

// TestMakeTaskEnvironment verifies TASKGEN_* variables change the defaults.
func TestMakeTaskEnvironment(t *testing.T) {
	h := e2e.NewHarness(t)
	out := h.TempFixture()
	h.SetEnv("TASKGEN_SOURCE_PATH", out.Path("jobs"))
	h.SetEnv("TASKGEN_SOURCE_SUFFIX", "Job.php")

	result := h.Run("make:task", "Cleanup")

	e2e.AssertSuccess(t, result)
	if !out.Exists(filepath.Join("jobs", "CleanupJob.php")) {
		t.Errorf("expected jobs/CleanupJob.php, got output:\n%s", result.Stdout)
	}
}

// TestMakeTaskConfigFile verifies settings from the default config file.
func TestMakeTaskConfigFile(t *testing.T) {
	h := e2e.NewHarness(t)
	home := e2e.NewFixture(t, h.HomeDir())
	home.WriteFile(filepath.Join(".taskgen", "config.yaml"), "source:\n  path: scheduled\n  suffix: Tasks.php\n")

	result := h.Run("make:task", "--no-input", "Backup")

	e2e.AssertSuccess(t, result)
	if !h.ProjectFixture().Exists(filepath.Join("scheduled", "BackupTasks.php")) {
		t.Errorf("expected scheduled/BackupTasks.php, got output:\n%s", result.Stdout)
	}
}

// TestStubsCommand verifies the listing of types and schedule names.
func TestStubsCommand(t *testing.T) {
	golden := goldenDir(t)
	h := e2e.NewHarness(t)

	result := h.Run("stubs")

	e2e.AssertSuccess(t, result)
	e2e.AssertOutputMatches(t, result, golden, "stubs")
}

// TestStubsCommandProjectSource verifies project stubs are reported by path.
func TestStubsCommandProjectSource(t *testing.T) {
	h := e2e.NewHarness(t)
	path := h.ProjectFixture().WriteStub("closure", "<?php\n")

	result := h.Run("stubs")

	e2e.AssertSuccess(t, result)
	e2e.AssertOutputContains(t, result, path)
}

// TestConfigInit verifies config init writes a file once.
func TestConfigInit(t *testing.T) {
	h := e2e.NewHarness(t)

	e2e.AssertSuccess(t, h.Run("config", "init"))

	again := h.Run("config", "init")
	e2e.AssertError(t, again)
	e2e.AssertErrorContains(t, again, "--force")

	e2e.AssertSuccess(t, h.Run("config", "init", "--force"))

	path := h.Run("config", "path")
	e2e.AssertSuccess(t, path)
	e2e.AssertFileContains(t, strings.TrimSpace(path.Stdout), "suffix: Tasks.php")
}

// TestHelpFlag verifies the command is listed in help.
func TestHelpFlag(t *testing.T) {
	h := e2e.NewHarness(t)

	result := h.Run("--help")

	e2e.AssertSuccess(t, result)
	e2e.AssertOutputContains(t, result, "make:task")
}
