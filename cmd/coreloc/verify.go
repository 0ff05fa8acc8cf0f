package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/decima-tools/coreloc/internal/decima"
)

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Check that a load/save cycle reproduces containers byte for byte",
		ArgsUsage: "<container-or-directory>",
		Flags:     append([]cli.Flag{gameFlag(), workersFlag()}, loggingFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			applyConfig(c, LoadConfig())
			log := newLogger()

			input := c.Args().First()
			if input == "" {
				return fmt.Errorf("%w: verify needs a container file or directory", errUsage)
			}
			if isDir(input) {
				return runBatch(ctx, log, input, "verify", func(ctx context.Context, path string) ([]string, error) {
					return verifyOne(path)
				})
			}

			warnings, err := verifyOne(input)
			logWarnings(log, input, warnings)
			if err != nil {
				return err
			}
			log.Info("verified", "container", input)
			return nil
		},
	}
}

func verifyOne(path string) ([]string, error) {
	game, err := resolveGame(path)
	if err != nil {
		return nil, err
	}
	data, release, err := decima.MapFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = release() }()

	rt, err := decima.VerifyRoundTrip(game, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	warnings := warningStrings(rt.Warnings)
	if !rt.Clean {
		return warnings, fmt.Errorf("%s: round trip diverged (in=%s out=%s)", path, rt.Input, rt.Output)
	}
	return warnings, nil
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}
