package interfaces

import (
	"context"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
)

// Repository defines the interface for analysis persistence
type Repository interface {
	Analysis() AnalysisRepository

	// Close releases the backend resources
	Close() error
}

// AnalysisRepository stores completed ROI analysis results
type AnalysisRepository interface {
	// Create stores a new result under its ID
	Create(ctx context.Context, result *model.ROIResult) error

	// Get retrieves a result by ID
	Get(ctx context.Context, id types.AnalysisID) (*model.ROIResult, error)

	// List retrieves all stored results, newest first
	List(ctx context.Context) ([]*model.ROIResult, error)

	// Delete removes a result by ID
	Delete(ctx context.Context, id types.AnalysisID) error
}
