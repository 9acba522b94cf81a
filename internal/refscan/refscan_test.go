package refscan

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestScanner(t *testing.T) (*Scanner, string, string) {
	t.Helper()
	root := t.TempDir()
	testsDir := filepath.Join(root, "tests")
	dataDir := filepath.Join(testsDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	return New(testsDir, dataDir, slog.New(slog.DiscardHandler)), testsDir, dataDir
}

func TestScanner_FindsReferencedFiles(t *testing.T) {
	s, testsDir, dataDir := newTestScanner(t)

	writeFile(t, filepath.Join(dataDir, "silence-44-s.mp3"), "mp3")
	writeFile(t, filepath.Join(dataDir, "empty.flac"), "flac")

	writeFile(t, filepath.Join(testsDir, "test_mp3.py"), `
path = os.path.join(DATA_DIR, "silence-44-s.mp3")
other = os.path.join(DATA_DIR, 'empty.flac')
`)
	writeFile(t, filepath.Join(testsDir, "test_flac.py"), `
f = open(os.path.join(DATA_DIR, "empty.flac"))
`)

	files, refs, err := s.Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{"empty.flac", "silence-44-s.mp3"}, files)
	assert.Contains(t, refs["empty.flac"], "test_mp3.py")
	assert.Contains(t, refs["empty.flac"], "test_flac.py")
	assert.Equal(t, []string{"test_mp3.py"}, uniqueSorted(refs["silence-44-s.mp3"]))
}

func TestScanner_LoosePatternAndFalsePositive(t *testing.T) {
	s, testsDir, dataDir := newTestScanner(t)

	writeFile(t, filepath.Join(dataDir, "click.wav"), "wav")

	// The bare DATA_DIR, "name" tuple form, plus the docstring word the
	// loose pattern would otherwise capture.
	writeFile(t, filepath.Join(testsDir, "test_wave.py"), `
shutil.copy(os.path.join(DATA_DIR , "click.wav"), tmp)
"""checks what DATA_DIR, "does" not reference"""
`)

	files, _, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"click.wav"}, files)
}

func TestScanner_SkipsMissingDataFiles(t *testing.T) {
	s, testsDir, _ := newTestScanner(t)

	writeFile(t, filepath.Join(testsDir, "test_mp3.py"), `
path = os.path.join(DATA_DIR, "generated-on-the-fly.mp3")
`)

	files, refs, err := s.Scan()
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Empty(t, refs)
}

func TestScanner_IgnoresNonMatchingSources(t *testing.T) {
	s, testsDir, dataDir := newTestScanner(t)

	writeFile(t, filepath.Join(dataDir, "track.ogg"), "ogg")
	writeFile(t, filepath.Join(testsDir, "helper.py"), `
os.path.join(DATA_DIR, "track.ogg")
`)

	files, _, err := s.Scan()
	require.NoError(t, err)
	assert.Empty(t, files, "non test_*.py sources must not be scanned")
}

func uniqueSorted(values []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
