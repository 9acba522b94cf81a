// Package fixture builds and writes golden fixture cases describing
// the expected decoded content of audio files.
package fixture

import (
	"github.com/listenupapp/goldenfix/internal/canon"
	"github.com/listenupapp/goldenfix/internal/format"
)

// ErrorCode classifies why a case carries no decoded expectations.
type ErrorCode string

const (
	// ErrorInvalidHeader means the decoder raised an error.
	ErrorInvalidHeader ErrorCode = "invalidHeader"

	// ErrorUnsupportedFormat means the decoder ran but produced no
	// usable result.
	ErrorUnsupportedFormat ErrorCode = "unsupportedFormat"
)

// CaseError is a per-case decode failure, captured as data.
type CaseError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// CoreInfo holds the five optional technical numbers every format
// decoder may report. Fields are nil when the decoder does not expose
// the attribute or reports a non-finite value; they serialize as null
// so consumers see their absence explicitly.
type CoreInfo struct {
	Length        *float64 `json:"length"`
	Bitrate       *float64 `json:"bitrate"`
	SampleRate    *float64 `json:"sampleRate"`
	Channels      *float64 `json:"channels"`
	BitsPerSample *float64 `json:"bitsPerSample"`
}

// Case is one fixture record: the expected decode result for a single
// input file.
type Case struct {
	CaseID             string                 `json:"caseId"`
	SourceReferences   []string               `json:"sourceReferences"`
	InputFile          string                 `json:"inputFile"`
	ExpectedFormat     format.ID              `json:"expectedFormat"`
	ExpectedCoreInfo   CoreInfo               `json:"expectedCoreInfo"`
	ExpectedTags       map[string]canon.Value `json:"expectedTags"`
	ExpectedExtensions map[string]canon.Value `json:"expectedExtensions"`
	ExpectedError      *CaseError             `json:"expectedError"`
}

// Document is one fixture file: all cases of a single format.
type Document struct {
	Format format.ID `json:"format"`
	Cases  []Case    `json:"cases"`
}

// ManifestEntry describes one written fixture file.
type ManifestEntry struct {
	Format format.ID `json:"format"`
	File   string    `json:"file"`
	Count  int       `json:"count"`
}

// Manifest indexes all written fixture files.
type Manifest struct {
	Files []ManifestEntry `json:"files"`
}
