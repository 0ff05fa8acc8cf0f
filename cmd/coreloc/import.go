package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/decima-tools/coreloc/internal/adapter"
	"github.com/decima-tools/coreloc/internal/decima"
	"github.com/decima-tools/coreloc/internal/fsutil"
)

func importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Apply an edited translation file back into a container",
		ArgsUsage: "<container-or-directory> [translation-file]",
		Flags: append([]cli.Flag{
			gameFlag(),
			formatFlag(),
			outputFlag("output container path (default: overwrite the input in place)"),
			workersFlag(),
		}, loggingFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			applyConfig(c, LoadConfig())
			log := newLogger()

			input := c.Args().First()
			if input == "" {
				return fmt.Errorf("%w: import needs a container file or directory", errUsage)
			}
			translation := c.Args().Get(1)

			ad, err := adapter.ForFormat(format)
			if err != nil {
				return err
			}
			// An explicit translation path wins over --format when its
			// extension names a known adapter.
			if translation != "" && !c.IsSet("format") {
				ext := strings.TrimPrefix(filepath.Ext(translation), ".")
				if byExt, err := adapter.ForFormat(ext); err == nil {
					ad = byExt
				}
			}

			st, err := os.Stat(input)
			if err != nil {
				return err
			}
			if st.IsDir() {
				if translation != "" || output != "" {
					return fmt.Errorf("%w: directory import pairs each container with its <name>.core.%s sidecar", errUsage, ad.Extension())
				}
				return runBatch(ctx, log, input, "import", func(ctx context.Context, path string) ([]string, error) {
					warnings, err := importOne(ad, path, path+"."+ad.Extension(), path)
					if errors.Is(err, fs.ErrNotExist) {
						return append(warnings, "no translation sidecar, container skipped"), nil
					}
					return warnings, err
				})
			}

			if translation == "" {
				translation = input + "." + ad.Extension()
			}
			out := output
			if out == "" {
				out = input
			}
			warnings, err := importOne(ad, input, translation, out)
			logWarnings(log, input, warnings)
			if err != nil {
				return err
			}
			log.Info("imported", "container", input, "translation", translation, "output", out)
			return nil
		},
	}
}

// importOne parses a translation file and applies it to the container.
// Edits whose target does not exist are warnings; the rest still apply. The
// container is only rewritten when an edit actually changed something.
func importOne(ad adapter.Adapter, path, translation, out string) ([]string, error) {
	game, err := resolveGame(path)
	if err != nil {
		return nil, err
	}
	tdata, err := os.ReadFile(translation)
	if err != nil {
		return nil, err
	}
	entries, err := ad.Parse(tdata)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", translation, err)
	}

	doc, err := decima.LoadFile(game, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	warnings := warningStrings(doc.Warnings)
	warnings = append(warnings, warningStrings(doc.Apply(entries))...)

	if !doc.Dirty() {
		return append(warnings, "no text changed, container left untouched"), nil
	}
	data, err := doc.Save()
	if err != nil {
		return warnings, fmt.Errorf("%s: %w", path, err)
	}
	if err := fsutil.WriteFileAtomic(out, data, 0o644); err != nil {
		return warnings, err
	}
	return warnings, nil
}
