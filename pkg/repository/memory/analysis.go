package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type analysisRepository struct {
	mu      sync.RWMutex
	results map[types.AnalysisID]*model.ROIResult
}

func newAnalysisRepository() *analysisRepository {
	return &analysisRepository{
		results: make(map[types.AnalysisID]*model.ROIResult),
	}
}

func (r *analysisRepository) Create(ctx context.Context, result *model.ROIResult) error {
	if err := result.ID.Validate(); err != nil {
		return goerr.Wrap(err, "cannot store analysis result")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.results[result.ID]; exists {
		return goerr.New("analysis result already exists", goerr.V("id", result.ID))
	}

	// Store a shallow copy; the nested values are never mutated after
	// construction.
	stored := *result
	r.results[result.ID] = &stored
	return nil
}

func (r *analysisRepository) Get(ctx context.Context, id types.AnalysisID) (*model.ROIResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, exists := r.results[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "analysis result not found", goerr.V("id", id))
	}

	copied := *result
	return &copied, nil
}

func (r *analysisRepository) List(ctx context.Context) ([]*model.ROIResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*model.ROIResult, 0, len(r.results))
	for _, result := range r.results {
		copied := *result
		results = append(results, &copied)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].ID < results[j].ID
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (r *analysisRepository) Delete(ctx context.Context, id types.AnalysisID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.results[id]; !exists {
		return goerr.Wrap(ErrNotFound, "analysis result not found", goerr.V("id", id))
	}
	delete(r.results, id)
	return nil
}
