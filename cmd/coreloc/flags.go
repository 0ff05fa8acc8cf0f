package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/decima-tools/coreloc/internal/decima"
	"github.com/decima-tools/coreloc/internal/logger"
)

var (
	gameName  string
	format    string
	langNames []string
	output    string
	workers   int64
	logLevel  string
	logFormat string
)

func gameFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "game",
		Aliases:     []string{"g"},
		Usage:       "game layout (hzd, ds); detected from the file when omitted",
		Destination: &gameName,
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "format",
		Aliases:     []string{"f"},
		Usage:       "translation file format (json, yaml, txt)",
		Value:       "json",
		Destination: &format,
	}
}

func languagesFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:        "language",
		Aliases:     []string{"l"},
		Usage:       "restrict to these languages (repeatable); all when omitted",
		Destination: &langNames,
	}
}

func outputFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       usage,
		Destination: &output,
	}
}

func workersFlag() cli.Flag {
	return &cli.Int64Flag{
		Name:        "workers",
		Aliases:     []string{"w"},
		Usage:       "parallel workers for directory runs (0 = CPU count)",
		Destination: &workers,
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json)",
			Value:       "pretty",
			Destination: &logFormat,
		},
	}
}

// newLogger builds the command logger from the logging flags, after config
// file defaults were applied.
func newLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	if logFormat == "json" {
		return logger.JSON(os.Stderr, level)
	}
	return logger.Pretty(os.Stderr, level)
}

// resolveGame returns the game layout for a container: the --game flag when
// given, otherwise a detection pass over the file's chunk magics.
func resolveGame(path string) (decima.Game, error) {
	if gameName != "" {
		return decima.ParseGame(gameName)
	}
	data, release, err := decima.MapFile(path)
	if err != nil {
		return decima.GameUnknown, err
	}
	defer func() { _ = release() }()

	det, err := decima.DetectGame(data)
	if err != nil {
		return decima.GameUnknown, fmt.Errorf("%s: %w", path, err)
	}
	game, ok := det.Game()
	if !ok {
		return decima.GameUnknown, fmt.Errorf("%s: detection inconclusive (%s), pass --game", path, det)
	}
	return game, nil
}

// filterLanguages drops entries outside the --language selection. An empty
// selection keeps everything; unknown names are an error.
func filterLanguages(game decima.Game, entries []decima.Entry) ([]decima.Entry, error) {
	if len(langNames) == 0 {
		return entries, nil
	}
	keep, unknown := game.LanguageCodes(langNames)
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: languages not in the %s table: %v", errUsage, game, unknown)
	}
	filtered := entries[:0:0]
	for _, e := range entries {
		code, ok := game.LanguageCode(e.Language)
		if ok && keep[code] {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

var errUsage = errors.New("invalid usage")
