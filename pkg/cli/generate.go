package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/cli/config"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/usecase"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdGenerate() *cli.Command {
	var s session
	var cand candidateFlags
	var genCfg config.Generation

	var flags []cli.Flag
	flags = append(flags, cand.Flags(false)...)
	flags = append(flags, genCfg.Flags()...)
	flags = append(flags, s.Flags()...)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Propose a random cable color pattern not used by any item with the same connectors",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			settings, err := genCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure generation")
			}
			logging.From(ctx).Debug("generation settings", "generation", genCfg)

			return s.Do(ctx, settings.Generator, func(ctx context.Context, uc *usecase.UseCases) error {
				candidate, err := cand.Candidate(ctx, uc)
				if err != nil {
					return err
				}

				gen, err := uc.CablePattern.GenerateColorPattern(ctx, candidate, settings.Length)
				if err != nil {
					return goerr.Wrap(err, "failed to generate color pattern")
				}

				renderGeneration(c.Root().Writer, gen)
				return nil
			})
		},
	}
}
