package fixture

import (
	"context"
	"log/slog"

	"github.com/listenupapp/goldenfix/internal/decoder"
	"github.com/listenupapp/goldenfix/internal/errors"
)

// ReferenceScanner supplies the input corpus: the data filenames the
// external test suite references, with per-file provenance.
type ReferenceScanner interface {
	Scan() (files []string, refs map[string][]string, err error)
}

// Generator runs the whole pipeline: scan references, build one case
// per file, write grouped fixture documents.
type Generator struct {
	scanner ReferenceScanner
	builder *Builder
	writer  *Writer
	logger  *slog.Logger
}

// NewGenerator wires the pipeline.
func NewGenerator(scanner ReferenceScanner, dec decoder.Decoder, dataDir, outputDir string, logger *slog.Logger) *Generator {
	return &Generator{
		scanner: scanner,
		builder: NewBuilder(dec, dataDir, logger),
		writer:  NewWriter(outputDir),
		logger:  logger,
	}
}

// Summary reports what a run produced.
type Summary struct {
	Cases int
	Files int
}

// Run generates all fixtures. Files are processed strictly
// sequentially; per-file decode failures become case data. An empty
// corpus is the one fatal precondition.
func (g *Generator) Run(ctx context.Context) (Summary, error) {
	files, refs, err := g.scanner.Scan()
	if err != nil {
		return Summary{}, errors.Scan(err, "reference scan failed")
	}
	if len(files) == 0 {
		return Summary{}, errors.ErrEmptyCorpus
	}
	g.logger.Info("discovered input corpus", "files", len(files))

	cases := make([]Case, 0, len(files))
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}
		cases = append(cases, g.builder.Build(ctx, name, refs[name]))
	}

	manifest, err := g.writer.Write(cases)
	if err != nil {
		return Summary{}, errors.Write(err, "fixture output failed")
	}
	return Summary{Cases: len(cases), Files: len(manifest.Files)}, nil
}
