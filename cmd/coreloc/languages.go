package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/decima-tools/coreloc/internal/decima"
)

func languagesCmd() *cli.Command {
	return &cli.Command{
		Name:  "languages",
		Usage: "List the language table of a game",
		Flags: []cli.Flag{gameFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			applyConfig(c, LoadConfig())

			if gameName == "" {
				return fmt.Errorf("%w: languages needs --game", errUsage)
			}
			game, err := decima.ParseGame(gameName)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d languages\n", game, game.LanguageCount())
			for code, name := range game.Languages() {
				fmt.Printf("%3d  %s\n", code, name)
			}
			return nil
		},
	}
}
