package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"github.com/allisson/fieldcrypt/cmd/app/commands"
	"github.com/allisson/fieldcrypt/internal/app"
	"github.com/allisson/fieldcrypt/internal/config"
	cryptoDomain "github.com/allisson/fieldcrypt/internal/crypto/domain"
)

func getDataCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "rewrap-column",
			Usage: "Re-encrypt every value of a column under the current key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "table",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Table holding the encrypted column",
				},
				&cli.StringFlag{
					Name:     "column",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Encrypted column",
				},
				&cli.StringFlag{
					Name:  "id-column",
					Value: "id",
					Usage: "Primary key column used to page through the table",
				},
				&cli.IntFlag{
					Name:    "batch-size",
					Aliases: []string{"b"},
					Usage:   "Rows per transaction (defaults to REWRAP_BATCH_SIZE)",
				},
				&cli.FloatFlag{
					Name:  "rate",
					Usage: "Maximum rows per second, 0 for unlimited (defaults to REWRAP_ROWS_PER_SECOND)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if cmd.IsSet("batch-size") {
					cfg.RewrapBatchSize = int(cmd.Int("batch-size"))
				}
				if cmd.IsSet("rate") {
					cfg.RewrapRowsPerSecond = cmd.Float("rate")
				}

				gin.SetMode(cfg.GetGinMode())
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				if err := cfg.Validate(); err != nil {
					return err
				}

				useCase, err := container.RewrapUseCase()
				if err != nil {
					return err
				}

				var server commands.BackgroundServer
				metricsServer, err := container.MetricsServer()
				if err != nil {
					return err
				}
				if metricsServer != nil {
					server = metricsServer
				}

				return commands.RunRewrapColumn(
					ctx,
					useCase,
					server,
					container.Logger(),
					commands.DefaultIO().Writer,
					cryptoDomain.ColumnTarget{
						Table:    cmd.String("table"),
						Column:   cmd.String("column"),
						IDColumn: cmd.String("id-column"),
					},
					cmd.String("format"),
				)
			},
		},
	}
}
