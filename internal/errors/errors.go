// Package errors provides sentinel errors and custom error types for the obsidianite application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotConfigured indicates that no vault mapping exists yet
	ErrNotConfigured = errors.New("vault not configured")

	// ErrNoToken indicates that no GitHub token is stored
	ErrNoToken = errors.New("no GitHub token configured")

	// ErrRepoNotFound indicates that the remote repository does not exist
	ErrRepoNotFound = errors.New("repository not found")
)

// RepoNotFoundError represents an error when a remote repository is not found
type RepoNotFoundError struct {
	Name string
}

func (e *RepoNotFoundError) Error() string {
	return fmt.Sprintf("repository %s does not exist", e.Name)
}

// Is returns true if the target error is ErrRepoNotFound
func (e *RepoNotFoundError) Is(target error) bool {
	return target == ErrRepoNotFound
}

// NewRepoNotFoundError creates a new RepoNotFoundError
func NewRepoNotFoundError(name string) *RepoNotFoundError {
	return &RepoNotFoundError{Name: name}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// tokenPatterns match GitHub token material that must never reach the
// terminal or the log file, even when embedded in remote URLs.
var tokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`ghp_[A-Za-z0-9]{36}`),
	regexp.MustCompile(`github_pat_[A-Za-z0-9_]{82}`),
	regexp.MustCompile(`gho_[A-Za-z0-9]{36}`),
	regexp.MustCompile(`ghs_[A-Za-z0-9]{36}`),
}

// Redact scrubs token material from a message. The token argument may be
// empty; known token formats are scrubbed regardless.
func Redact(msg, token string) string {
	if token != "" {
		msg = strings.ReplaceAll(msg, token, "***TOKEN***")
	}
	for _, p := range tokenPatterns {
		msg = p.ReplaceAllString(msg, "***TOKEN***")
	}
	return msg
}

// RedactError returns the error's message with token material scrubbed.
func RedactError(err error, token string) string {
	if err == nil {
		return ""
	}
	return Redact(err.Error(), token)
}
