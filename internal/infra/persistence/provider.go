// Package persistence chooses the profile store backend at start-up.
package persistence

import (
	"log/slog"

	"lifeline/config"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/gormdb"
	"lifeline/internal/infra/persistence/memory"

	"go.uber.org/fx"
)

// SelectBackend picks the durable store when the database section is complete, the fallback otherwise.
// The result is fixed for the lifetime of the process.
func SelectBackend(cfg *config.Config, logger *slog.Logger) repository.Backend {
	if cfg.Database.IsConfigured() {
		logger.Info("Database configured, using durable profile store",
			slog.String("driver", cfg.Database.Driver),
		)

		return repository.BackendDurable
	}

	logger.Warn("Database not configured, using in-memory profile store; data is lost on restart")

	return repository.BackendFallback
}

// RepositoryParams holds dependencies for ProfileRepository, injected by Fx
type RepositoryParams struct {
	fx.In
	fx.Lifecycle

	Backend repository.Backend
	Config  *config.Config
	Logger  *slog.Logger
}

// NewProfileRepository builds the store for the selected backend. A durable
// backend that cannot be reached fails start-up through the ping hook.
func NewProfileRepository(params RepositoryParams) (repository.ProfileRepository, error) {
	switch params.Backend {
	case repository.BackendDurable:
		db, err := gormdb.New(gormdb.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return gormdb.NewProfileRepository(db), nil
	default:
		return memory.NewProfileRepository(), nil
	}
}
