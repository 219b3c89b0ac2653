package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/usecase"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdAudit() *cli.Command {
	var s session

	return &cli.Command{
		Name:    "audit",
		Aliases: []string{"a"},
		Usage:   "Report active items that share a connector set and cable color pattern",
		Flags:   s.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return s.Do(ctx, nil, func(ctx context.Context, uc *usecase.UseCases) error {
				result, err := uc.CablePattern.AuditConflicts(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to audit cable patterns")
				}

				renderAudit(c.Root().Writer, result)
				if result.HasIssues() {
					for _, group := range result.Groups {
						logging.From(ctx).Warn("shared cable pattern found",
							"connectors", group.Connectors,
							"colors", group.Colors,
							"items", len(group.Items),
						)
					}
					return goerr.Wrap(ErrConflictsFound, "audit found shared patterns",
						goerr.V("groups", len(result.Groups)))
				}

				logging.From(ctx).Info("cable pattern audit passed", "checked", result.Checked)
				return nil
			})
		},
	}
}
