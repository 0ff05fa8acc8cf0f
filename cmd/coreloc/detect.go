package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/decima-tools/coreloc/internal/decima"
)

func detectCmd() *cli.Command {
	return &cli.Command{
		Name:      "detect",
		Usage:     "Report which game's text resources a container carries",
		ArgsUsage: "<container>...",
		Flags:     loggingFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			applyConfig(c, LoadConfig())

			paths := c.Args().Slice()
			if len(paths) == 0 {
				return fmt.Errorf("%w: detect needs at least one container file", errUsage)
			}
			var failed int
			for _, path := range paths {
				det, err := detectOne(path)
				if err != nil {
					fmt.Printf("%s: error: %v\n", path, err)
					failed++
					continue
				}
				fmt.Printf("%s: %s\n", path, det)
			}
			if failed > 0 {
				return fmt.Errorf("detect: %d of %d containers failed", failed, len(paths))
			}
			return nil
		},
	}
}

func detectOne(path string) (decima.Detection, error) {
	data, release, err := decima.MapFile(path)
	if err != nil {
		return decima.DetectUnknown, err
	}
	defer func() { _ = release() }()
	return decima.DetectGame(data)
}
