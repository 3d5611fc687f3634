package memory

import (
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// ErrNotFound is returned when a stored record does not exist
var ErrNotFound = goerr.New("record not found")

// Memory is an in-memory repository, safe for concurrent use. Results do
// not survive the process; it backs tests and single-shot CLI runs.
type Memory struct {
	analysis *analysisRepository
}

var _ interfaces.Repository = &Memory{}

// New creates an empty in-memory repository
func New() *Memory {
	return &Memory{
		analysis: newAnalysisRepository(),
	}
}

// Analysis returns the analysis result store
func (m *Memory) Analysis() interfaces.AnalysisRepository {
	return m.analysis
}

// Close is a no-op for the in-memory backend
func (m *Memory) Close() error {
	return nil
}
