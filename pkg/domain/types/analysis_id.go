package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// AnalysisID represents a unique identifier for an ROI analysis result
type AnalysisID string

// NewAnalysisID generates a new random AnalysisID
func NewAnalysisID() AnalysisID {
	return AnalysisID(uuid.NewString())
}

// Validate checks if the AnalysisID is valid
func (id AnalysisID) Validate() error {
	if id == "" {
		return goerr.New("analysis ID cannot be empty")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return goerr.Wrap(err, "analysis ID must be a UUID", goerr.V("id", id))
	}
	return nil
}

// String returns the string representation of AnalysisID
func (id AnalysisID) String() string {
	return string(id)
}
