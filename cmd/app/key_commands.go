package main

import (
	"context"
	"crypto/rand"

	"github.com/urfave/cli/v3"

	"github.com/allisson/fieldcrypt/cmd/app/commands"
	"github.com/allisson/fieldcrypt/internal/app"
	"github.com/allisson/fieldcrypt/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-key",
			Usage: "Generate a random key to stage in the next slot",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "size",
					Aliases: []string{"s"},
					Value:   32,
					Usage:   "Key size in bytes (16, 24 or 32)",
				},
				&cli.StringFlag{
					Name:    "encoding",
					Aliases: []string{"e"},
					Value:   "base64",
					Usage:   "Key encoding: 'base64' or 'hex'",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				return commands.RunCreateKey(
					commands.DefaultIO().Writer,
					rand.Reader,
					cfg.KeyEnvPrefix,
					int(cmd.Int("size")),
					cmd.String("encoding"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "bootstrap-keys",
			Usage: "Register configured keys and print their references",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				material, err := container.KeyMaterial()
				if err != nil {
					return err
				}
				registry, err := container.KeyRegistryUseCase()
				if err != nil {
					return err
				}

				return commands.RunBootstrapKeys(
					ctx,
					registry,
					material,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-keys",
			Usage: "List durable key records with their lifecycle state",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				material, err := container.KeyMaterial()
				if err != nil {
					return err
				}
				registry, err := container.KeyRegistryUseCase()
				if err != nil {
					return err
				}

				return commands.RunListKeys(
					ctx,
					registry,
					material,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "inspect-envelope",
			Usage: "Print the header of an encrypted value without decrypting it",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Encoded envelope",
				},
				&cli.StringFlag{
					Name:    "encoding",
					Aliases: []string{"e"},
					Value:   "base64",
					Usage:   "Envelope encoding: 'base64' or 'hex'",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunInspectEnvelope(
					commands.DefaultIO().Writer,
					cmd.String("value"),
					cmd.String("encoding"),
					cmd.String("format"),
				)
			},
		},
	}
}
