package ligstyle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesSkipped    int // Files skipped by .gitignore
}

// loadGitIgnore loads .gitignore from the working directory.
// A missing file is not an error.
func loadGitIgnore() *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile reports whether a relative path is ignored by git.
// Absolute paths (like /tmp/...) are never affected by the project's .gitignore.
func shouldSkipFile(gi *ignore.GitIgnore, path string) bool {
	if gi == nil || filepath.IsAbs(path) {
		return false
	}
	return gi.MatchesPath(path)
}

// expandGlobPatterns resolves patterns to a deduplicated list of regular files
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var stats ScanStats
	gi := loadGitIgnore()
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++
			if shouldSkipFile(gi, match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
		}
	}
	return files, stats, nil
}
