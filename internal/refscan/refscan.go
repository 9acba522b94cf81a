// Package refscan discovers which sample data files the external test
// suite references, by text-scanning its test sources.
//
// The scan is provenance metadata plus corpus discovery only: the
// generator never interprets the referencing tests, it just needs the
// file list and, per file, which tests mention it.
package refscan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// Default patterns match the data-directory joins used by the suite
// the fixtures are generated against: both the explicit
// os.path.join(DATA_DIR, "name") form and bare DATA_DIR, "name" tuples.
var defaultPatterns = []*regexp.Regexp{
	regexp.MustCompile(`os\.path\.join\(DATA_DIR,\s*['"]([^'"]+)['"]\)`),
	regexp.MustCompile(`DATA_DIR\s*,\s*['"]([^'"]+)['"]`),
}

// falsePositives lists captured names that are not filenames; the
// upstream suite contains one docstring that trips the loose pattern.
var falsePositives = map[string]struct{}{
	"does": {},
}

// DefaultIncludeGlob selects which test sources are scanned.
const DefaultIncludeGlob = "test_*.py"

// Scanner scans test sources in TestsDir for references to files that
// exist under DataDir.
type Scanner struct {
	TestsDir    string
	DataDir     string
	IncludeGlob string
	logger      *slog.Logger
}

// New creates a scanner with the default include glob.
func New(testsDir, dataDir string, logger *slog.Logger) *Scanner {
	return &Scanner{
		TestsDir:    testsDir,
		DataDir:     dataDir,
		IncludeGlob: DefaultIncludeGlob,
		logger:      logger,
	}
}

// Scan returns the sorted unique list of referenced data files that
// actually exist, plus a filename -> referencing-test map. Names whose
// file is missing from DataDir are dropped silently: the suite may
// reference fixtures it generates on the fly.
func (s *Scanner) Scan() ([]string, map[string][]string, error) {
	sources, err := filepath.Glob(filepath.Join(s.TestsDir, s.IncludeGlob))
	if err != nil {
		return nil, nil, fmt.Errorf("glob test sources: %w", err)
	}
	sort.Strings(sources)

	found := make(map[string]struct{})
	refs := make(map[string][]string)

	for _, source := range sources {
		text, err := os.ReadFile(source)
		if err != nil {
			return nil, nil, fmt.Errorf("read test source %s: %w", source, err)
		}
		testName := filepath.Base(source)

		for _, pattern := range defaultPatterns {
			for _, match := range pattern.FindAllSubmatch(text, -1) {
				name := string(match[1])
				if _, ok := falsePositives[name]; ok {
					continue
				}
				if !s.dataFileExists(name) {
					continue
				}
				found[name] = struct{}{}
				refs[name] = append(refs[name], testName)
			}
		}
	}

	files := make([]string, 0, len(found))
	for name := range found {
		files = append(files, name)
	}
	sort.Strings(files)

	s.logger.Debug("reference scan complete", "sources", len(sources), "files", len(files))
	return files, refs, nil
}

func (s *Scanner) dataFileExists(name string) bool {
	info, err := os.Stat(filepath.Join(s.DataDir, name))
	return err == nil && info.Mode().IsRegular()
}
