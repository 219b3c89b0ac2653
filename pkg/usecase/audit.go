package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"
)

// ConflictGroup is a set of active items sharing one connector set and one
// color pattern
type ConflictGroup struct {
	Connectors model.ConnectorSet
	Colors     model.ColorSequence
	Items      []model.ConflictSummary
}

// AuditResult holds the results of an inventory-wide pattern audit
type AuditResult struct {
	Checked int
	Skipped int
	Groups  []ConflictGroup
}

// HasIssues returns true if any two active items share a pattern
func (r *AuditResult) HasIssues() bool {
	return len(r.Groups) > 0
}

// AuditConflicts checks every active item against every other active item.
// Items without connectors or colors are skipped, as they never conflict when
// edited. Groups are reported in the order their first item appears.
// It does NOT modify any data.
func (uc *CablePatternUseCase) AuditConflicts(ctx context.Context) (*AuditResult, error) {
	items, err := uc.repo.Item().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list items")
	}

	result := &AuditResult{}
	active := make([]*model.Item, 0, len(items))
	for _, item := range items {
		if !item.IsActive() {
			continue
		}
		if item.Connectors().IsEmpty() || item.Colors().IsEmpty() {
			result.Skipped++
			continue
		}
		active = append(active, item)
	}
	result.Checked = len(active)

	type groupKey struct {
		connectors string
		colors     string
	}

	idx := model.NewPatternIndex(active)
	reported := make(map[groupKey]bool)
	for _, item := range active {
		key := groupKey{
			connectors: item.Connectors().Signature(),
			colors:     item.Colors().Signature(),
		}
		if reported[key] {
			continue
		}
		reported[key] = true

		conflicts := idx.Scan(model.Candidate{
			Connectors: item.Connectors(),
			Colors:     item.Colors(),
		})
		if len(conflicts) < 2 {
			continue
		}

		result.Groups = append(result.Groups, ConflictGroup{
			Connectors: item.Connectors().Normalize(),
			Colors:     item.Colors(),
			Items:      conflicts,
		})
	}

	uc.metrics.ObserveScan(flatten(result.Groups))
	return result, nil
}

func flatten(groups []ConflictGroup) model.ConflictResult {
	result := model.ConflictResult{}
	for _, g := range groups {
		result = append(result, g.Items...)
	}
	return result
}
