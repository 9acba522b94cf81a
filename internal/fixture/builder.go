package fixture

import (
	"context"
	"log/slog"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/listenupapp/goldenfix/internal/canon"
	"github.com/listenupapp/goldenfix/internal/decoder"
	"github.com/listenupapp/goldenfix/internal/format"
)

// Builder produces one fixture case per input file.
type Builder struct {
	decoder decoder.Decoder
	dataDir string
	logger  *slog.Logger
}

// NewBuilder creates a builder decoding files under dataDir.
func NewBuilder(dec decoder.Decoder, dataDir string, logger *slog.Logger) *Builder {
	return &Builder{decoder: dec, dataDir: dataDir, logger: logger}
}

// Build decodes filename once and assembles its case. Decode failures
// are classified into the case's expectedError and never propagate:
// one failing file must not prevent other files from producing cases.
func (b *Builder) Build(ctx context.Context, filename string, sourceRefs []string) Case {
	c := Case{
		CaseID:             strings.TrimSuffix(filename, filepath.Ext(filename)),
		SourceReferences:   sortedUnique(sourceRefs),
		InputFile:          filename,
		ExpectedFormat:     format.FromFilename(filename),
		ExpectedTags:       map[string]canon.Value{},
		ExpectedExtensions: map[string]canon.Value{},
	}

	file, err := b.decoder.Decode(ctx, filepath.Join(b.dataDir, filename))
	if err != nil {
		b.logger.Debug("decode failed", "file", filename, "error", err)
		c.ExpectedError = &CaseError{Code: ErrorInvalidHeader, Message: err.Error()}
		return c
	}
	if file == nil {
		b.logger.Debug("decoder produced no result", "file", filename)
		c.ExpectedError = &CaseError{Code: ErrorUnsupportedFormat, Message: "no result"}
		return c
	}

	if file.Info != nil {
		c.ExpectedCoreInfo = CoreInfo{
			Length:        coreNumber(file.Info, "length"),
			Bitrate:       coreNumber(file.Info, "bitrate"),
			SampleRate:    coreNumber(file.Info, "sample_rate"),
			Channels:      coreNumber(file.Info, "channels"),
			BitsPerSample: coreNumber(file.Info, "bits_per_sample"),
		}
	}
	c.ExpectedTags = CollectTags(file)
	c.ExpectedExtensions = CollectExtensions(file)
	return c
}

// coreNumber extracts one optional numeric info attribute. Integers
// pass through, finite floats pass through, anything else is parsed
// leniently from its string form. Non-finite or unparseable values are
// absent, never zero.
func coreNumber(info *decoder.Info, name string) *float64 {
	value, ok := info.Attr(name)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case decoder.BoolValue:
		// Booleans are not core numbers; keep the raw 0/1 out of the
		// technical fields.
		return nil
	case decoder.IntValue:
		f := float64(v.Int())
		return &f
	case decoder.FloatValue:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	default:
		f, err := strconv.ParseFloat(strings.TrimSpace(value.String()), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	}
}

func sortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
