//go:build !windows

package execute

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/language"
)

func run(t *testing.T, line string) (*language.Command, string) {
	t.Helper()
	dir := t.TempDir()
	return &language.Command{Line: line, Dir: dir}, dir
}

func TestExecuteCapturesStdout(t *testing.T) {
	command, _ := run(t, "echo hello; echo world")
	result := Execute(context.Background(), command)

	if result.Status != STATUS_NORMAL {
		t.Errorf("expected %s, got %s", STATUS_NORMAL, result.Status)
	}
	if result.Stdout != "hello\nworld" {
		t.Errorf("unexpected stdout: %q", result.Stdout)
	}
	if result.Stderr != "" {
		t.Errorf("unexpected stderr: %q", result.Stderr)
	}
	if result.Error != nil {
		t.Errorf("unexpected error: %s", *result.Error)
	}
	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", result.ExitCode)
	}
}

func TestExecuteStderrAloneIsNotAnError(t *testing.T) {
	command, _ := run(t, "echo warning >&2")
	result := Execute(context.Background(), command)

	if result.Stderr != "warning" {
		t.Errorf("unexpected stderr: %q", result.Stderr)
	}
	if result.Error != nil {
		t.Errorf("stderr output must not set the error, got %s", *result.Error)
	}
	if result.Status != STATUS_NORMAL {
		t.Errorf("expected %s, got %s", STATUS_NORMAL, result.Status)
	}
}

func TestExecuteNonZeroExit(t *testing.T) {
	command, _ := run(t, "echo partial; echo broken >&2; exit 3")
	result := Execute(context.Background(), command)

	if result.Status != STATUS_RUNTIME_ERROR {
		t.Errorf("expected %s, got %s", STATUS_RUNTIME_ERROR, result.Status)
	}
	if result.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", result.ExitCode)
	}
	if result.Error == nil || *result.Error != "exit status 3" {
		t.Errorf("unexpected error: %v", result.Error)
	}
	if result.Stdout != "partial" || result.Stderr != "broken" {
		t.Errorf("outputs should still be captured, got %q / %q", result.Stdout, result.Stderr)
	}
}

func TestExecuteSignalTermination(t *testing.T) {
	command, _ := run(t, "kill -9 $$")
	result := Execute(context.Background(), command)

	if result.Status != STATUS_SIGNAL_TERMINATE {
		t.Errorf("expected %s, got %s", STATUS_SIGNAL_TERMINATE, result.Status)
	}
	if result.Signal != "SIGKILL" {
		t.Errorf("expected SIGKILL, got %q", result.Signal)
	}
	if result.ExitCode != 137 {
		t.Errorf("expected exit code 137, got %d", result.ExitCode)
	}
	if result.Error == nil {
		t.Error("expected an error message")
	}
}

func TestExecuteSpawnFailure(t *testing.T) {
	command := &language.Command{Line: "echo never", Dir: filepath.Join(t.TempDir(), "missing")}
	result := Execute(context.Background(), command)

	if result.Status != STATUS_SPAWN_FAILURE {
		t.Errorf("expected %s, got %s", STATUS_SPAWN_FAILURE, result.Status)
	}
	if result.Error == nil || *result.Error == "" {
		t.Fatal("expected an error message")
	}
	if result.Stdout != "" || result.Stderr != "" {
		t.Errorf("expected no output, got %q / %q", result.Stdout, result.Stderr)
	}
	if result.DurationMs < 0 {
		t.Errorf("duration must not be negative: %d", result.DurationMs)
	}
}

func TestExecuteMeasuresWallTime(t *testing.T) {
	command, _ := run(t, "sleep 0.2")
	result := Execute(context.Background(), command)

	if result.DurationMs < 200 {
		t.Errorf("expected at least 200ms, got %d", result.DurationMs)
	}
	if result.DurationMs > 5000 {
		t.Errorf("duration is unreasonably long: %d", result.DurationMs)
	}
}

func TestExecuteRunsInCommandDirectory(t *testing.T) {
	command, dir := run(t, "pwd")
	result := Execute(context.Background(), command)

	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	got, err := filepath.EvalSymlinks(result.Stdout)
	if err != nil {
		t.Fatalf("failed to resolve %q: %v", result.Stdout, err)
	}
	if got != want {
		t.Errorf("expected cwd %q, got %q", want, got)
	}
}

func TestExecuteKillsProcessGroupOnCancel(t *testing.T) {
	command, _ := run(t, "sleep 30 & sleep 30; wait")

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	begin := time.Now()
	result := Execute(ctx, command)
	if elapsed := time.Since(begin); elapsed > 10*time.Second {
		t.Fatalf("process was not killed, took %s", elapsed)
	}

	if result.Status != STATUS_SIGNAL_TERMINATE {
		t.Errorf("expected %s, got %s", STATUS_SIGNAL_TERMINATE, result.Status)
	}
	if result.Error == nil {
		t.Error("expected an error message")
	}
}

func TestExecuteResolvedInterpreter(t *testing.T) {
	bin := t.TempDir()
	interpreter := "#!/bin/sh\necho \"python ran $1\"\n"
	if err := os.WriteFile(filepath.Join(bin, "python"), []byte(interpreter), 0755); err != nil {
		t.Fatalf("failed to write fake interpreter: %v", err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	file := filepath.Join(t.TempDir(), "my script.py")
	if err := os.WriteFile(file, []byte("print('hi')\n"), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	command, err := language.Resolve("python", file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result := Execute(context.Background(), command)

	if result.Status != STATUS_NORMAL {
		t.Fatalf("expected %s, got %s (%v)", STATUS_NORMAL, result.Status, result.Error)
	}
	if !strings.HasSuffix(result.Stdout, "my script.py") || !strings.HasPrefix(result.Stdout, "python ran ") {
		t.Errorf("unexpected stdout: %q", result.Stdout)
	}
}
