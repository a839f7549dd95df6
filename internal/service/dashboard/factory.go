package dashboard

import "log/slog"

// Factory mints per-operator orchestrators over a shared repository set.
// The pending selection set and the suspended-confirmation state belong
// to one operator's workflow, so every session gets its own Service;
// only the store access is shared.
type Factory struct {
	log        *slog.Logger
	catalog    catalogRepo
	inProgress inProgressRepo
	history    historyRepo
	entryLog   entryLogRepo
	shims      shimRepo
	critical   criticalRepo
	cfg        Config
}

// NewFactory validates the workshop rules once; sessions inherit them.
func NewFactory(
	log *slog.Logger,
	catalog catalogRepo,
	inProgress inProgressRepo,
	history historyRepo,
	entryLog entryLogRepo,
	shims shimRepo,
	critical criticalRepo,
	cfg Config,
) (*Factory, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &Factory{
		log:        log,
		catalog:    catalog,
		inProgress: inProgress,
		history:    history,
		entryLog:   entryLog,
		shims:      shims,
		critical:   critical,
		cfg:        cfg,
	}, nil
}

// NewSession returns an idle orchestrator with an empty selection set.
func (f *Factory) NewSession() *Service {
	return &Service{
		catalog:    f.catalog,
		inProgress: f.inProgress,
		history:    f.history,
		entryLog:   f.entryLog,
		shims:      f.shims,
		critical:   f.critical,
		log:        f.log.With("service", "dashboard"),
		cfg:        f.cfg,
		state:      StateIdle,
	}
}
