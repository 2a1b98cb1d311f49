package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

const header = "Date,Type,Category,Amount,Description\n"

// useLedger points the global -store flag to a ledger file in a temporary
// folder, with the given content unless it is empty.
func useLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "finance_tracker.csv")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write ledger: %v", err)
		}
	}
	old := storePath
	storePath = &path
	t.Cleanup(func() { storePath = old })
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %q: %v", path, err)
	}
	return string(content)
}

// captureStdout returns everything f prints on os.Stdout.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()

	oldStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	f()
	w.Close()
	return <-done
}

// execute runs a freshly created subcommand with args, like the commander would.
func execute(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse %v: %v", args, err)
	}
	var status subcommands.ExitStatus
	out := captureStdout(t, func() {
		status = c.Execute(context.Background(), f)
	})
	return status, out
}
