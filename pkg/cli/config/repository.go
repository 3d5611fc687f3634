package config

import (
	"context"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/interfaces"
	"github.com/enricoaquilina/dora-finrisk/pkg/repository/memory"
	"github.com/enricoaquilina/dora-finrisk/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (memory)",
			Value:       "memory",
			Sources:     cli.EnvVars("FINRISK_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// Configure initializes and returns a repository based on the configured
// backend. The caller is responsible for calling Close() on it.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "memory":
		logging.From(ctx).Debug("Using in-memory repository")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
