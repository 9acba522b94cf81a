package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"

	"github.com/listenupapp/goldenfix/internal/format"
)

// Writer groups cases by format and persists one fixture document per
// format plus a manifest index.
type Writer struct {
	outputDir string
}

// NewWriter creates a writer targeting outputDir. The directory is
// created on first write.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Write persists all cases. Formats are written in lexical order and
// cases within a document are sorted by input file, so output is fully
// determined by the input set.
func (w *Writer) Write(cases []Case) (Manifest, error) {
	byFormat := make(map[format.ID][]Case)
	for _, c := range cases {
		byFormat[c.ExpectedFormat] = append(byFormat[c.ExpectedFormat], c)
	}

	formats := make([]format.ID, 0, len(byFormat))
	for id := range byFormat {
		formats = append(formats, id)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })

	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("create output dir: %w", err)
	}

	manifest := Manifest{Files: []ManifestEntry{}}
	for _, id := range formats {
		group := byFormat[id]
		sort.Slice(group, func(i, j int) bool { return group[i].InputFile < group[j].InputFile })

		name := string(id) + ".json"
		doc := Document{Format: id, Cases: group}
		if err := w.writeJSON(name, doc); err != nil {
			return Manifest{}, err
		}
		manifest.Files = append(manifest.Files, ManifestEntry{
			Format: id,
			File:   name,
			Count:  len(group),
		})
	}

	if err := w.writeJSON("index.json", manifest); err != nil {
		return Manifest{}, err
	}
	return manifest, nil
}

// writeJSON serializes v through RFC 8785 canonicalization so reruns
// produce byte-identical files, then writes it with a trailing newline.
func (w *Writer) writeJSON(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	canonical, err := jsoncanonicalizer.Transform(raw)
	if err != nil {
		return fmt.Errorf("canonicalize %s: %w", name, err)
	}
	canonical = append(canonical, '\n')

	path := filepath.Join(w.outputDir, name)
	if err := os.WriteFile(path, canonical, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
