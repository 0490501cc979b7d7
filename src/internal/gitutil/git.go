// Package gitutil commits written data files to the surrounding git
// repository when the CLI is asked to.
package gitutil

import (
	"bytes"
	"fmt"
	"os/exec"
)

// Runner abstracts command execution for testability.
type Runner interface {
	Run(name string, args ...string) (stdout string, stderr string, err error)
}

type defaultRunner struct{}

// Run executes the named program with args and returns stdout, stderr, and error.
func (defaultRunner) Run(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	var out, errB bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errB
	err := cmd.Run()
	return out.String(), errB.String(), err
}

var runner Runner = defaultRunner{}

// Commit stages the given paths and commits with message. A clean tree is
// treated as success. Nothing is pushed; the repository's remotes are the
// user's business.
func Commit(paths []string, message string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := gitAdd(paths); err != nil {
		return err
	}
	noChange, err := gitCommit(message)
	if err != nil && !noChange {
		return err
	}
	return nil
}

// gitAdd stages additions, modifications, and deletions for the provided paths.
func gitAdd(paths []string) error {
	args := append([]string{"add", "-A"}, paths...)
	if _, stderr, err := runner.Run("git", args...); err != nil {
		return fmt.Errorf("git add failed: %v: %s", err, stderr)
	}
	return nil
}

// gitCommit attempts to create a commit. It returns (noChange=true) when there
// is nothing to commit, which callers treat as success.
func gitCommit(message string) (noChange bool, err error) {
	stdout, stderr, runErr := runner.Run("git", "commit", "-m", message)
	if runErr == nil {
		return false, nil
	}
	// Some Git versions indicate no-op on stdout or stderr; treat as noChange.
	combined := append([]byte(stderr), []byte(stdout)...)
	if bytes.Contains(combined, []byte("nothing to commit")) ||
		bytes.Contains(combined, []byte("no changes added to commit")) ||
		bytes.Contains(combined, []byte("working tree clean")) {
		return true, nil
	}
	return false, fmt.Errorf("git commit failed: %v: %s%s", runErr, stderr, stdout)
}
