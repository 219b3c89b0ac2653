package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var s session
	var cand candidateFlags

	var flags []cli.Flag
	flags = append(flags, cand.Flags(true)...)
	flags = append(flags, s.Flags()...)

	return &cli.Command{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "Find stored items whose cable color pattern equals the given one",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return s.Do(ctx, nil, func(ctx context.Context, uc *usecase.UseCases) error {
				candidate, err := cand.Candidate(ctx, uc)
				if err != nil {
					return err
				}

				result, err := uc.CablePattern.CheckConflicts(ctx, candidate)
				if err != nil {
					return goerr.Wrap(err, "failed to check conflicts")
				}

				palette, _, err := uc.CablePattern.Palette(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to load palette")
				}

				renderConflicts(c.Root().Writer, candidate, result)
				renderUnknownColors(c.Root().Writer, candidate.Colors, palette)
				if result.HasConflicts() {
					return goerr.Wrap(ErrConflictsFound, "pattern is already used",
						goerr.V("conflicts", len(result)))
				}
				return nil
			})
		},
	}
}
