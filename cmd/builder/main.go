package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cypherlabdev/match-features-service/internal/ingest"
	"github.com/cypherlabdev/match-features-service/internal/models"
	"github.com/cypherlabdev/match-features-service/pkg/features"
)

func main() {
	var (
		inPath    = flag.String("in", "", "input CSV of cleaned match results")
		outDir    = flag.String("out-dir", ".", "directory for output CSVs")
		windows   = flag.String("windows", "3,5,10", "comma-separated rolling window sizes")
		kFactor   = flag.Float64("k", 20.0, "Elo K factor")
		base      = flag.Float64("base", 1500.0, "Elo base rating for unseen teams")
		validFrac = flag.Float64("valid-frac", 0.15, "fraction of rows for the validation split")
		testFrac  = flag.Float64("test-frac", 0.15, "fraction of rows for the test split")
		logLevel  = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	logger := setupLogger(*logLevel)

	if *inPath == "" {
		logger.Fatal().Msg("-in is required")
	}

	windowSizes, err := parseWindows(*windows)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -windows")
	}

	start := time.Now()

	matches, err := readMatches(*inPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *inPath).Msg("failed to read match table")
	}
	logger.Info().Int("match_count", len(matches)).Str("path", *inPath).Msg("match table loaded")

	engine := features.NewEngine(models.FeatureParams{
		Windows:    windowSizes,
		KFactor:    *kFactor,
		BaseRating: *base,
	}, logger)

	rows, err := engine.Build(matches)
	if err != nil {
		logger.Fatal().Err(err).Msg("feature build failed")
	}
	logger.Info().
		Int("row_count", len(rows)).
		Dur("elapsed", time.Since(start)).
		Msg("features built")

	train, valid, test, err := features.TimeSplit(rows, *validFrac, *testFrac)
	if err != nil {
		logger.Fatal().Err(err).Msg("split failed")
	}

	splits := []struct {
		name string
		rows []models.FeatureRow
	}{
		{"train", train},
		{"valid", valid},
		{"test", test},
	}
	for _, split := range splits {
		path := filepath.Join(*outDir, split.name+".csv")
		if err := writeFeatures(path, split.rows, windowSizes); err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("failed to write split")
		}
		logger.Info().Str("split", split.name).Int("rows", len(split.rows)).Str("path", path).Msg("split written")
	}
}

func parseWindows(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		size, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid window size %q", part)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

func readMatches(path string) ([]models.MatchRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ingest.ReadMatches(f)
}

func writeFeatures(path string, rows []models.FeatureRow, windows []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ingest.WriteFeatures(f, rows, windows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func setupLogger(rawLevel string) zerolog.Logger {
	level, err := zerolog.ParseLevel(rawLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	return log.Logger.With().Str("service", "match-features-builder").Logger()
}
