package ligstyle

import (
	"os"
	"path/filepath"
	"testing"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp switches to a fresh directory for the duration of the test.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
	return dir
}

func writeFiles(t *testing.T, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestShouldSkipFile(t *testing.T) {
	gi := ignore.CompileIgnoreLines("build/", "*.bak.user.css")

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "ignored directory",
			path:     "build/out.user.css",
			expected: true,
		},
		{
			name:     "ignored suffix",
			path:     "styles/old.bak.user.css",
			expected: true,
		},
		{
			name:     "tracked userstyle",
			path:     "styles/iosevka.user.css",
			expected: false,
		},
		{
			name:     "absolute path",
			path:     "/tmp/build/out.user.css",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldSkipFile(gi, tt.path)
			require.Equal(t, tt.expected, got, "shouldSkipFile(%q)", tt.path)
		})
	}

	assert.False(t, shouldSkipFile(nil, "build/out.user.css"))
}

func TestExpandGlobPatterns(t *testing.T) {
	chdirTemp(t)
	writeFiles(t, map[string]string{
		".gitignore":             "build/\n",
		"a.user.css":             "",
		"styles/b.user.css":      "",
		"styles/deep/c.user.css": "",
		"styles/notes.txt":       "",
		"build/d.user.css":       "",
	})
	require.NoError(t, os.MkdirAll("styles/dir.user.css", 0o755))

	files, stats, err := expandGlobPatterns([]string{"**/*.user.css", "a.user.css"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"a.user.css",
		filepath.Join("styles", "b.user.css"),
		filepath.Join("styles", "deep", "c.user.css"),
	}, files)
	assert.Equal(t, 4, stats.FilesDiscovered)
	assert.Equal(t, 1, stats.FilesSkipped)
}

func TestExpandGlobPatterns_NoGitIgnore(t *testing.T) {
	chdirTemp(t)
	writeFiles(t, map[string]string{"build/d.user.css": ""})

	files, stats, err := expandGlobPatterns([]string{"build/*.user.css"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("build", "d.user.css")}, files)
	assert.Zero(t, stats.FilesSkipped)
}

func TestExpandGlobPatterns_BadPattern(t *testing.T) {
	_, _, err := expandGlobPatterns([]string{"[unterminated"})
	require.Error(t, err)
}
