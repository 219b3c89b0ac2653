package usecase

import (
	"github.com/sohosai/hyperdashi-client-sub000/pkg/domain/interfaces"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/service/cablecolor"
	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/metrics"
)

type UseCases struct {
	repo         interfaces.Repository
	generator    *cablecolor.Generator
	metrics      *metrics.Collector
	CablePattern *CablePatternUseCase
}

type Option func(*UseCases)

func WithGenerator(gen *cablecolor.Generator) Option {
	return func(uc *UseCases) {
		uc.generator = gen
	}
}

func WithMetrics(c *metrics.Collector) Option {
	return func(uc *UseCases) {
		uc.metrics = c
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.generator == nil {
		uc.generator = cablecolor.New()
	}

	uc.CablePattern = NewCablePatternUseCase(repo, uc.generator, uc.metrics)

	return uc
}
