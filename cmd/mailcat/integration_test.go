package main

import (
	"context"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/csheth/mailcat/internal/backendstub"
	"github.com/csheth/mailcat/internal/tuitest"
)

func TestMailcatClassifiesPastedEmail(t *testing.T) {
	t.Parallel()

	shutdown, endpoint, err := backendstub.Start("127.0.0.1:0", backendstub.Options{})
	if err != nil {
		t.Fatalf("start backend stub: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--endpoint", endpoint, "--log-file", ""},
		Dir:     t.TempDir(),
		Width:   100,
		Height:  32,
		Steps: []tuitest.Step{
			tuitest.WaitFor("Go to prediction"),
			tuitest.Press(tuitest.KeyEnter, 200*time.Millisecond),
			tuitest.WaitFor("Email text"),
			tuitest.Type("Please find the billing receipt attached."),
			tuitest.Press(tuitest.KeyCtrlS, 200*time.Millisecond),
			tuitest.WaitFor("Classify another email"),
			tuitest.Press(tuitest.KeyCtrlC, 500*time.Millisecond),
		},
		Timeout:        15 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	if !rec.Contains("invoice") {
		t.Fatalf("predicted category never rendered\n%s", lastPlain(rec))
	}
}

func TestMailcatShowsFailureNotice(t *testing.T) {
	t.Parallel()

	shutdown, endpoint, err := backendstub.Start("127.0.0.1:0", backendstub.Options{Status: http.StatusInternalServerError})
	if err != nil {
		t.Fatalf("start backend stub: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--endpoint", endpoint, "--log-file", ""},
		Dir:     t.TempDir(),
		Width:   100,
		Height:  32,
		Steps: []tuitest.Step{
			tuitest.WaitFor("Go to prediction"),
			tuitest.Press(tuitest.KeyEnter, 200*time.Millisecond),
			tuitest.WaitFor("Email text"),
			tuitest.Type("free money"),
			tuitest.Press(tuitest.KeyCtrlS, 200*time.Millisecond),
			tuitest.WaitFor("Prediction failed"),
			tuitest.Press(tuitest.KeyEsc, 200*time.Millisecond),
			tuitest.Press(tuitest.KeyCtrlC, 300*time.Millisecond),
		},
		Timeout:        15 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}
	if rec.Contains("Classify another email") {
		t.Fatal("a failed prediction must not show the result panel")
	}
}

func TestMailcatRejectsInvalidEndpoint(t *testing.T) {
	t.Parallel()

	if err := run([]string{"--endpoint", "not a url", "--log-file", ""}); err == nil {
		t.Fatal("expected an invalid endpoint to be rejected")
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PTY integration test in short mode")
	}
	if os.Getenv("MAILCAT_SKIP_PTY") != "" {
		t.Skip("MAILCAT_SKIP_PTY set")
	}
	tmp := t.TempDir()
	name := "mailcat-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(tmp, name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}

func lastPlain(rec *tuitest.Recording) string {
	frame, ok := rec.FinalFrame()
	if !ok {
		return "(no frames)"
	}
	return frame.Plain
}
