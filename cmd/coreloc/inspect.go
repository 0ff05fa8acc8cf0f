package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/decima-tools/coreloc/internal/decima"
)

func inspectCmd() *cli.Command {
	var (
		showText bool
		language string
	)

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Inspect the chunk and resource layout of a container",
		ArgsUsage: "<container>",
		Flags: append([]cli.Flag{
			gameFlag(),
			&cli.BoolFlag{Name: "text", Usage: "print the decoded text of every resource", Destination: &showText},
			&cli.StringFlag{Name: "text-language", Usage: "restrict --text to one language", Destination: &language},
		}, loggingFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			applyConfig(c, LoadConfig())

			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("%w: inspect needs a container file", errUsage)
			}
			st, err := os.Stat(path)
			if err != nil {
				return err
			}
			game, err := resolveGame(path)
			if err != nil {
				return err
			}
			doc, err := decima.LoadFile(game, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			fmt.Printf("Container: %s (%d bytes, game=%s)\n", path, st.Size(), game)
			fmt.Printf("Chunks: %d, text resources: %d\n", len(doc.Chunks), len(doc.Resources))
			for _, w := range doc.Warnings {
				fmt.Printf("warning: %s\n", w)
			}

			section("Chunks")
			for i, ch := range doc.Chunks {
				line := fmt.Sprintf("%4d  magic=%#016x size=%d", i, ch.Magic, len(ch.Payload))
				if r := resourceAt(doc, i); r != nil {
					line += fmt.Sprintf("  %s guid=%s", r.Kind, r.GUID)
				}
				fmt.Println(line)
			}

			if showText {
				for _, r := range doc.Resources {
					section(fmt.Sprintf("Resource %d (%s)", r.ChunkIndex, r.Kind))
					for code := 0; code < game.LanguageCount(); code++ {
						name := game.LanguageName(code)
						if language != "" && !strings.EqualFold(name, language) {
							continue
						}
						text := r.Text(code)
						if text == "" {
							continue
						}
						fmt.Printf("%-22s %s\n", name+":", text)
					}
				}
			}
			return nil
		},
	}
}

func resourceAt(doc *decima.Document, chunkIndex int) *decima.TextResource {
	for _, r := range doc.Resources {
		if r.ChunkIndex == chunkIndex {
			return r
		}
	}
	return nil
}

func section(title string) {
	line := strings.Repeat("-", len(title)+8)
	fmt.Printf("\n%s\n--- %s ---\n%s\n", line, title, line)
}
