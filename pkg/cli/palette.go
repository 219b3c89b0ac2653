package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/cli/config"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdPalette() *cli.Command {
	var s session
	var genCfg config.Generation

	var flags []cli.Flag
	flags = append(flags, genCfg.Flags()...)
	flags = append(flags, s.Flags()...)

	return &cli.Command{
		Name:    "palette",
		Aliases: []string{"p"},
		Usage:   "List the color master and which colors random generation may use",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			settings, err := genCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure generation")
			}

			return s.Do(ctx, settings.Generator, func(ctx context.Context, uc *usecase.UseCases) error {
				palette, eligible, err := uc.CablePattern.Palette(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to load palette")
				}
				ok, err := uc.CablePattern.CanGenerate(ctx, settings.Length)
				if err != nil {
					return goerr.Wrap(err, "failed to check palette size")
				}

				renderPalette(c.Root().Writer, palette, eligible, settings.Length, ok)
				return nil
			})
		},
	}
}
