package git

import (
	"context"
	"fmt"
	"strings"
)

// ChangeSet groups file paths by their change status.
type ChangeSet struct {
	Modified  []string
	Added     []string
	Deleted   []string
	Renamed   []string
	Untracked []string
}

// Empty reports whether the change set contains no files.
func (c *ChangeSet) Empty() bool {
	return len(c.Modified) == 0 && len(c.Added) == 0 && len(c.Deleted) == 0 &&
		len(c.Renamed) == 0 && len(c.Untracked) == 0
}

// Total returns the number of files in the change set.
func (c *ChangeSet) Total() int {
	return len(c.Modified) + len(c.Added) + len(c.Deleted) + len(c.Renamed) + len(c.Untracked)
}

// ChangedFiles returns the working tree changes relative to HEAD,
// grouped by status.
func ChangedFiles(ctx context.Context, dir string) (*ChangeSet, error) {
	lines, err := NewCommandRunner(dir).RunLines(ctx, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to get changed files: %w", err)
	}
	return parsePorcelain(lines), nil
}

// parsePorcelain categorizes `git status --porcelain` output lines.
func parsePorcelain(lines []string) *ChangeSet {
	cs := &ChangeSet{}
	for _, line := range lines {
		if len(line) < 4 {
			continue
		}
		code := line[:2]
		path := strings.TrimSpace(line[3:])
		switch {
		case code == "??":
			cs.Untracked = append(cs.Untracked, path)
		case strings.Contains(code, "R"):
			// porcelain renders renames as "old -> new"
			cs.Renamed = append(cs.Renamed, path)
		case strings.Contains(code, "D"):
			cs.Deleted = append(cs.Deleted, path)
		case strings.Contains(code, "A"):
			cs.Added = append(cs.Added, path)
		default:
			cs.Modified = append(cs.Modified, path)
		}
	}
	return cs
}

// DiffSummary returns the files changed between two revisions, grouped
// by status. Used to show what a pull brought in.
func DiffSummary(ctx context.Context, dir, oldRev, newRev string) (*ChangeSet, error) {
	lines, err := NewCommandRunner(dir).RunLines(ctx, "diff", "--name-status", oldRev, newRev)
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s..%s: %w", oldRev, newRev, err)
	}
	return parseNameStatus(lines), nil
}

// parseNameStatus categorizes `git diff --name-status` output lines.
func parseNameStatus(lines []string) *ChangeSet {
	cs := &ChangeSet{}
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		status := fields[0]
		switch {
		case strings.HasPrefix(status, "R"):
			if len(fields) >= 3 {
				cs.Renamed = append(cs.Renamed, fmt.Sprintf("%s -> %s", fields[1], fields[2]))
			} else {
				cs.Renamed = append(cs.Renamed, fields[1])
			}
		case status == "D":
			cs.Deleted = append(cs.Deleted, fields[1])
		case status == "A":
			cs.Added = append(cs.Added, fields[1])
		default:
			cs.Modified = append(cs.Modified, fields[1])
		}
	}
	return cs
}
