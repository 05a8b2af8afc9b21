package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// FileDiff is one file-level entry of the staged diff
type FileDiff struct {
	// Path is the current path of the file (the new path for renames)
	Path string
	// OldPath is set for renames only
	OldPath string
	// Status is the git status letter: A, M, D, R, C or T
	Status byte
	// Insertions and Deletions are line counts; zero for binary files
	Insertions int
	Deletions  int
	Binary     bool
}

// StagedDiff returns the file-level diff between HEAD and the index,
// with rename detection. An empty slice means there is nothing staged.
func (r *Repo) StagedDiff(ctx context.Context) ([]FileDiff, error) {
	statusRaw, err := r.runner.RunRaw(ctx, "diff", "--cached", "-M", "--name-status", "-z")
	if err != nil {
		return nil, fmt.Errorf("failed to get staged diff status: %w", err)
	}

	numstatRaw, err := r.runner.RunRaw(ctx, "diff", "--cached", "-M", "--numstat", "-z")
	if err != nil {
		return nil, fmt.Errorf("failed to get staged diff numstat: %w", err)
	}

	counts := parseNumstat(numstatRaw)

	var diffs []FileDiff
	tokens := splitZ(statusRaw)
	for i := 0; i < len(tokens); i++ {
		status := tokens[i]
		if status == "" {
			continue
		}
		d := FileDiff{Status: status[0]}
		switch d.Status {
		case 'R', 'C':
			if i+2 >= len(tokens) {
				return nil, fmt.Errorf("truncated rename entry in diff output")
			}
			d.OldPath = tokens[i+1]
			d.Path = tokens[i+2]
			i += 2
		default:
			if i+1 >= len(tokens) {
				return nil, fmt.Errorf("truncated entry in diff output")
			}
			d.Path = tokens[i+1]
			i++
		}
		if c, ok := counts[d.Path]; ok {
			d.Insertions = c.insertions
			d.Deletions = c.deletions
			d.Binary = c.binary
		}
		diffs = append(diffs, d)
	}

	return diffs, nil
}

type lineCounts struct {
	insertions int
	deletions  int
	binary     bool
}

// parseNumstat parses NUL-terminated numstat output into per-path counts.
// Rename entries carry an empty path after the counts followed by the old
// and new paths as separate NUL-terminated fields; entries are keyed by
// the new path.
func parseNumstat(raw string) map[string]lineCounts {
	counts := make(map[string]lineCounts)
	tokens := splitZ(raw)
	for i := 0; i < len(tokens); i++ {
		fields := strings.SplitN(tokens[i], "\t", 3)
		if len(fields) != 3 {
			continue
		}
		c := lineCounts{}
		if fields[0] == "-" || fields[1] == "-" {
			c.binary = true
		} else {
			c.insertions, _ = strconv.Atoi(fields[0])
			c.deletions, _ = strconv.Atoi(fields[1])
		}
		path := fields[2]
		if path == "" {
			// Rename: the next two tokens are the old and new paths.
			if i+2 >= len(tokens) {
				break
			}
			path = tokens[i+2]
			i += 2
		}
		counts[path] = c
	}
	return counts
}

// splitZ splits NUL-terminated output into its fields
func splitZ(raw string) []string {
	raw = strings.TrimSuffix(raw, "\x00")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\x00")
}
