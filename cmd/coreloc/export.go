package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/decima-tools/coreloc/internal/adapter"
	"github.com/decima-tools/coreloc/internal/batch"
	"github.com/decima-tools/coreloc/internal/decima"
	"github.com/decima-tools/coreloc/internal/fsutil"
	"github.com/decima-tools/coreloc/internal/logger"
)

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export localized text into an editable translation file",
		ArgsUsage: "<container-or-directory>",
		Flags: append([]cli.Flag{
			gameFlag(),
			formatFlag(),
			languagesFlag(),
			outputFlag("output path for a single container (default <input>.<format>)"),
			workersFlag(),
		}, loggingFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			applyConfig(c, LoadConfig())
			log := newLogger()

			input := c.Args().First()
			if input == "" {
				return fmt.Errorf("%w: export needs a container file or directory", errUsage)
			}
			ad, err := adapter.ForFormat(format)
			if err != nil {
				return err
			}

			st, err := os.Stat(input)
			if err != nil {
				return err
			}
			if st.IsDir() {
				if output != "" {
					return fmt.Errorf("%w: --output only applies to a single container", errUsage)
				}
				return runBatch(ctx, log, input, "export", func(ctx context.Context, path string) ([]string, error) {
					return exportOne(ad, path, path+"."+ad.Extension())
				})
			}

			out := output
			if out == "" {
				out = input + "." + ad.Extension()
			}
			warnings, err := exportOne(ad, input, out)
			logWarnings(log, input, warnings)
			if err != nil {
				return err
			}
			log.Info("exported", "container", input, "output", out, "format", ad.Extension())
			return nil
		},
	}
}

// exportOne renders one container's entries to out. Containers with no
// decodable text resource are an error, not an empty export.
func exportOne(ad adapter.Adapter, path, out string) ([]string, error) {
	game, err := resolveGame(path)
	if err != nil {
		return nil, err
	}
	doc, err := decima.LoadFile(game, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	warnings := warningStrings(doc.Warnings)
	if len(doc.Resources) == 0 {
		return warnings, fmt.Errorf("%s: %w", path, decima.ErrNoTextResource)
	}

	entries, err := filterLanguages(game, doc.Entries())
	if err != nil {
		return warnings, err
	}
	rendered, err := ad.Render(entries)
	if err != nil {
		return warnings, fmt.Errorf("%s: %w", path, err)
	}
	if err := fsutil.WriteFileAtomic(out, rendered, 0o644); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// runBatch discovers .core files under root and applies fn to each on the
// worker pool, then reports the aggregate.
func runBatch(ctx context.Context, log logger.Logger, root, verb string, fn batch.Func) error {
	rels, err := fsutil.FindByExt(root, "core")
	if err != nil {
		return err
	}
	if len(rels) == 0 {
		return fmt.Errorf("no .core files under %s", root)
	}
	files := make([]string, len(rels))
	for i, rel := range rels {
		files[i] = filepath.Join(root, rel)
	}

	res := batch.Runner{Workers: int(workers)}.Run(ctx, files, fn)
	for _, o := range res.Outcomes {
		logWarnings(log, o.Path, o.Warnings)
		if o.Err != nil {
			log.Error(verb+" failed", "container", o.Path, "error", o.Err)
		}
	}
	log.Info(verb+" finished", "succeeded", res.Succeeded, "failed", res.Failed)
	if res.Failed > 0 {
		return fmt.Errorf("%s: %d of %d containers failed", verb, res.Failed, len(files))
	}
	return nil
}

func warningStrings(warns []decima.Warning) []string {
	out := make([]string, 0, len(warns))
	for _, w := range warns {
		out = append(out, w.String())
	}
	return out
}

func logWarnings(log logger.Logger, path string, warnings []string) {
	for _, w := range warnings {
		log.Warn(w, "container", path)
	}
}
