package usecase

import (
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/interfaces"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model/config"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/cashflow"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/montecarlo"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/penalty"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/riskadj"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/sensitivity"
)

type UseCases struct {
	repo         interfaces.Repository
	penaltyTable config.PenaltyTable
	thresholds   config.RecommendationThresholds

	Penalty *PenaltyUseCase
	ROI     *ROIUseCase
}

type Option func(*UseCases)

// WithPenaltyTable overrides the built-in penalty tier table
func WithPenaltyTable(table config.PenaltyTable) Option {
	return func(uc *UseCases) {
		uc.penaltyTable = table
	}
}

// WithRecommendationThresholds overrides the built-in verdict thresholds
func WithRecommendationThresholds(t config.RecommendationThresholds) Option {
	return func(uc *UseCases) {
		uc.thresholds = t
	}
}

func New(repo interfaces.Repository, opts ...Option) (*UseCases, error) {
	uc := &UseCases{
		repo:         repo,
		penaltyTable: config.DefaultPenaltyTable(),
		thresholds:   config.DefaultRecommendationThresholds(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	calculator, err := penalty.NewCalculator(uc.penaltyTable)
	if err != nil {
		return nil, err
	}
	if err := uc.thresholds.Validate(); err != nil {
		return nil, err
	}

	projector := cashflow.New()
	uc.Penalty = NewPenaltyUseCase(penalty.NewAggregator(calculator), riskadj.New())
	uc.ROI = NewROIUseCase(repo, projector,
		sensitivity.New(projector), montecarlo.New(projector), uc.thresholds)

	return uc, nil
}
