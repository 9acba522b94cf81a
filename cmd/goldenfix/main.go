// Command goldenfix generates golden reference fixtures describing the
// expected decoded content of the sample audio corpus, for consumption
// by decoder test suites in other languages.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/listenupapp/goldenfix/internal/config"
	"github.com/listenupapp/goldenfix/internal/decoder"
	"github.com/listenupapp/goldenfix/internal/fixture"
	"github.com/listenupapp/goldenfix/internal/logger"
	"github.com/listenupapp/goldenfix/internal/refscan"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "goldenfix: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Format:      cfg.Logger.Format,
		Environment: cfg.App.Environment,
	})

	scanner := refscan.New(cfg.Corpus.TestsDir, cfg.Corpus.DataDir, log.Logger)
	scanner.IncludeGlob = cfg.Corpus.IncludeGlob

	gen := fixture.NewGenerator(
		scanner,
		decoder.NewAudiometaDecoder(log.Logger),
		cfg.Corpus.DataDir,
		cfg.Output.Dir,
		log.Logger,
	)

	summary, err := gen.Run(context.Background())
	if err != nil {
		log.Fatal("fixture generation failed", "error", err)
	}

	fmt.Printf("generated %d cases across %d files\n", summary.Cases, summary.Files)
}
