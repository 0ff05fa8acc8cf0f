package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/decima-tools/coreloc/internal/bridge"
	"github.com/decima-tools/coreloc/internal/decima"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
	)

	return &cli.Command{
		Name:      "serve",
		Usage:     "Serve one container over HTTP for external editors",
		ArgsUsage: "<container>",
		Flags: append([]cli.Flag{
			gameFlag(),
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
		}, loggingFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			applyServeConfig(c, LoadConfig(), &addr)
			log := newLogger()

			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("%w: serve needs a container file", errUsage)
			}
			game, err := resolveGame(path)
			if err != nil {
				return err
			}
			doc, err := decima.LoadFile(game, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			for _, w := range doc.Warnings {
				log.Warn(w.String(), "container", path)
			}

			server := bridge.NewServer(doc, path, log)
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)
			log.Info("starting server", "address", addr, "container", path, "game", game)
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
