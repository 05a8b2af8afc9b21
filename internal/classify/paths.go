package classify

import (
	"path"
	"strings"

	"grit.dev/grit/internal/analyze"
)

// docExtensions are file extensions treated as documentation
var docExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".rst":      true,
	".txt":      true,
	".adoc":     true,
}

// buildFileNames are manifest/build files matched by exact base name
var buildFileNames = map[string]bool{
	"go.mod":         true,
	"go.sum":         true,
	"makefile":       true,
	"dockerfile":     true,
	"package.json":   true,
	"cargo.toml":     true,
	"pyproject.toml": true,
}

// buildExtensions are config-manifest extensions
var buildExtensions = map[string]bool{
	".yml":  true,
	".yaml": true,
	".toml": true,
	".lock": true,
}

// isDocPath reports whether a path looks like documentation
func isDocPath(p string) bool {
	if docExtensions[strings.ToLower(path.Ext(p))] {
		return true
	}
	return hasSegment(p, "docs") || hasSegment(p, "doc")
}

// isTestPath reports whether a path follows a test naming convention
func isTestPath(p string) bool {
	base := path.Base(p)
	if strings.HasSuffix(strings.TrimSuffix(base, path.Ext(base)), "_test") {
		return true
	}
	if strings.Contains(base, ".test.") || strings.Contains(base, ".spec.") {
		return true
	}
	return hasSegment(p, "test") || hasSegment(p, "tests") || hasSegment(p, "__tests__")
}

// isBuildPath reports whether a path is a build or config manifest
func isBuildPath(p string) bool {
	if buildFileNames[strings.ToLower(path.Base(p))] {
		return true
	}
	return buildExtensions[strings.ToLower(path.Ext(p))]
}

// hasSegment reports whether any directory segment of the path equals seg
func hasSegment(p, seg string) bool {
	dir := path.Dir(p)
	for dir != "." && dir != "/" {
		if path.Base(dir) == seg {
			return true
		}
		dir = path.Dir(dir)
	}
	return false
}

// deriveScope picks the scope for a classification: the filename stem
// when exactly one file changed, or the shared leading directory segment
// when every changed path starts with the same one.
func deriveScope(s analyze.ChangeSummary) string {
	if len(s.Records) == 1 {
		base := path.Base(s.Records[0].Path)
		return strings.TrimSuffix(base, path.Ext(base))
	}

	shared := ""
	for _, record := range s.Records {
		segment, rest, found := strings.Cut(record.Path, "/")
		if !found || rest == "" {
			// A top-level file has no leading directory to share.
			return ""
		}
		if shared == "" {
			shared = segment
			continue
		}
		if segment != shared {
			return ""
		}
	}
	return shared
}
